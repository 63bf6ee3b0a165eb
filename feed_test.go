package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPositionFetch(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		want    Position
		wantErr bool
	}{
		{
			name:   "string coordinates",
			status: http.StatusOK,
			body:   `{"message": "success", "timestamp": 1700000000, "iss_position": {"latitude": "-12.3456", "longitude": "101.5"}}`,
			want:   Position{Lat: -12.3456, Lon: 101.5, Timestamp: 1700000000},
		},
		{
			name:   "numeric coordinates",
			status: http.StatusOK,
			body:   `{"timestamp": 1700000001, "iss_position": {"latitude": 20.5, "longitude": 80}}`,
			want:   Position{Lat: 20.5, Lon: 80, Timestamp: 1700000001},
		},
		{name: "server error", status: http.StatusBadGateway, body: `{}`, wantErr: true},
		{name: "missing position", status: http.StatusOK, body: `{"message": "success"}`, wantErr: true},
		{name: "garbage coordinate", status: http.StatusOK, body: `{"iss_position": {"latitude": "north", "longitude": "1"}}`, wantErr: true},
		{name: "out of range", status: http.StatusOK, body: `{"iss_position": {"latitude": "91", "longitude": "1"}}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: true},
		{name: "NaN latitude", status: http.StatusOK, body: `{"iss_position": {"latitude": "NaN", "longitude": "10"}}`, wantErr: true},
		{name: "infinite longitude", status: http.StatusOK, body: `{"iss_position": {"latitude": "10", "longitude": "-Infinity"}}`, wantErr: true},
		{name: "negative timestamp", status: http.StatusOK, body: `{"timestamp": -5, "iss_position": {"latitude": "1", "longitude": "2"}}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serveBody(t, tc.status, tc.body)
			src := NewOpenNotifyPositionSource(srv.URL, time.Second)
			got, err := src.Fetch(context.Background())
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if got != tc.want {
				t.Errorf("Fetch = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPositionFetchDefaultsTimestamp(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{"iss_position": {"latitude": "1", "longitude": "2"}}`)
	before := time.Now().Unix()
	got, err := NewOpenNotifyPositionSource(srv.URL, time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Timestamp < before {
		t.Errorf("Timestamp = %d, want >= %d", got.Timestamp, before)
	}
}

func TestCrewFetchFiltersCraft(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{
		"message": "success",
		"number": 5,
		"people": [
			{"name": "Oleg Kononenko", "craft": "ISS"},
			{"name": "Jing Haiping", "craft": "Tiangong"},
			{"name": "Loral O'Hara", "craft": "ISS"},
			{"name": "", "craft": "ISS"},
			{"name": "Nikolai Chub", "craft": "ISS"}
		]
	}`)
	got, err := NewOpenNotifyCrewSource(srv.URL, "ISS", time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []string{"Oleg Kononenko", "Loral O'Hara", "Nikolai Chub"}
	if len(got) != len(want) {
		t.Fatalf("got %d crew, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Name != w || got[i].Craft != "ISS" {
			t.Errorf("crew[%d] = %+v, want %s", i, got[i], w)
		}
	}
}

func TestCrewFetchErrors(t *testing.T) {
	srv := serveBody(t, http.StatusInternalServerError, `oops`)
	if _, err := NewOpenNotifyCrewSource(srv.URL, "ISS", time.Second).Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
	srv = serveBody(t, http.StatusOK, `{"people": "nobody"}`)
	if _, err := NewOpenNotifyCrewSource(srv.URL, "ISS", time.Second).Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := NewOpenNotifyPositionSource(srv.URL, 5*time.Second).Fetch(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
