package main

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultMarkerRadius = 0.1
	wikipediaBase       = "https://en.wikipedia.org/wiki/"
)

// PlaceCrewMarkers spreads one marker per crew member evenly on a circle of
// radius degrees around center. Marker i sits at angle 2*pi*i/n.
func PlaceCrewMarkers(center Position, crew []CrewMember, radius float64) []CrewMarker {
	n := len(crew)
	markers := make([]CrewMarker, 0, n)
	for i, c := range crew {
		angle := float64(i) / float64(n) * 2 * math.Pi
		markers = append(markers, CrewMarker{
			Name:    c.Name,
			Lat:     center.Lat + math.Sin(angle)*radius,
			Lon:     center.Lon + math.Cos(angle)*radius,
			WikiURL: WikipediaURL(c.Name),
		})
	}
	return markers
}

// WikipediaURL guesses an article link from a person's name. Only the first
// space becomes an underscore; the title is escaped like encodeURIComponent.
func WikipediaURL(name string) string {
	return wikipediaBase + escapeComponent(strings.Replace(name, " ", "_", 1))
}

// escapeComponent percent-encodes every UTF-8 byte outside
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func escapeComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("-_.!~*'()", c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
