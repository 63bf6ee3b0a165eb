package main

import (
	"fmt"
	"time"

	_ "time/tzdata"
)

const (
	defaultClockZone  = "Asia/Kolkata"
	defaultClockLabel = "IST"

	// en-US toLocaleString with numeric h/m/s and hour12.
	clockLayout = "3:04:05 PM"
)

type Clock struct {
	loc   *time.Location
	label string
	now   func() time.Time
}

func NewClock(zone, label string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("clock zone %q: %w", zone, err)
	}
	return &Clock{loc: loc, label: label, now: time.Now}, nil
}

func (c *Clock) Render(t time.Time) string {
	return fmt.Sprintf("%s: %s", c.label, t.In(c.loc).Format(clockLayout))
}

func (c *Clock) Now() string {
	return c.Render(c.now())
}
