package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const defaultPositionURL = "http://api.open-notify.org/iss-now.json"

type PositionFeedSource interface {
	Fetch(ctx context.Context) (Position, error)
}

type OpenNotifyPositionSource struct {
	url        string
	httpClient *http.Client
}

func NewOpenNotifyPositionSource(url string, timeout time.Duration) *OpenNotifyPositionSource {
	return &OpenNotifyPositionSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type issNowResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  coordinate `json:"latitude"`
		Longitude coordinate `json:"longitude"`
	} `json:"iss_position"`
}

// coordinate accepts both "12.34" and 12.34; the public API sends strings.
type coordinate struct {
	value float64
	set   bool
}

func (c *coordinate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid coordinate %q: not finite", s)
	}
	c.value, c.set = f, true
	return nil
}

func (s *OpenNotifyPositionSource) Fetch(ctx context.Context) (Position, error) {
	body, err := getJSON(ctx, s.httpClient, s.url)
	if err != nil {
		return Position{}, fmt.Errorf("position feed: %w", err)
	}
	var resp issNowResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Position{}, fmt.Errorf("position feed decode: %w", err)
	}
	lat, lon := resp.ISSPosition.Latitude, resp.ISSPosition.Longitude
	if !lat.set || !lon.set {
		return Position{}, fmt.Errorf("position feed: missing iss_position")
	}
	if lat.value < -90 || lat.value > 90 || lon.value < -180 || lon.value > 180 {
		return Position{}, fmt.Errorf("position feed: coordinate out of range (%f, %f)", lat.value, lon.value)
	}
	ts := resp.Timestamp
	if ts < 0 {
		return Position{}, fmt.Errorf("position feed: negative timestamp %d", ts)
	}
	if ts == 0 {
		ts = time.Now().Unix()
	}
	return Position{Lat: lat.value, Lon: lon.value, Timestamp: ts}, nil
}

// getJSON performs a GET and returns the body of a 200 response.
func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
