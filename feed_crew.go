package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	defaultCrewURL = "http://api.open-notify.org/astros.json"
	defaultCraft   = "ISS"
)

type CrewFeedSource interface {
	Fetch(ctx context.Context) ([]CrewMember, error)
}

type OpenNotifyCrewSource struct {
	url        string
	craft      string
	httpClient *http.Client
}

func NewOpenNotifyCrewSource(url, craft string, timeout time.Duration) *OpenNotifyCrewSource {
	return &OpenNotifyCrewSource{
		url:        url,
		craft:      craft,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type astrosResponse struct {
	Message string       `json:"message"`
	Number  int          `json:"number"`
	People  []CrewMember `json:"people"`
}

// Fetch returns the people aboard the configured craft, in feed order.
func (s *OpenNotifyCrewSource) Fetch(ctx context.Context) ([]CrewMember, error) {
	body, err := getJSON(ctx, s.httpClient, s.url)
	if err != nil {
		return nil, fmt.Errorf("crew feed: %w", err)
	}
	var resp astrosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("crew feed decode: %w", err)
	}
	return filterCraft(resp.People, s.craft), nil
}

func filterCraft(people []CrewMember, craft string) []CrewMember {
	out := make([]CrewMember, 0, len(people))
	for _, p := range people {
		if p.Craft != craft || p.Name == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
