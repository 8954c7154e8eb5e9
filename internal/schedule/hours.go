package schedule

import (
	"fmt"
	"strings"
	"time"
)

// BusinessHours holds the shop's open and close times as minutes since
// midnight. The open interval is half-open: a shop open 07:00-19:00 accepts
// pickups at 07:00 but not at 19:00.
type BusinessHours struct {
	Open  int
	Close int
}

// ParseBusinessHours builds BusinessHours from "HH:MM" strings.
// Close must occur after open within the same day.
func ParseBusinessHours(openRaw, closeRaw string) (BusinessHours, error) {
	open, err := parseHoursComponent(openRaw)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("invalid open time: %w", err)
	}
	closing, err := parseHoursComponent(closeRaw)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("invalid close time: %w", err)
	}
	if closing <= open {
		return BusinessHours{}, fmt.Errorf("close time %s must be after open time %s", closeRaw, openRaw)
	}
	return BusinessHours{Open: open, Close: closing}, nil
}

func parseHoursComponent(raw string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// OpenAt returns the opening instant on t's calendar day.
func (h BusinessHours) OpenAt(t time.Time) time.Time {
	return StartOfDay(t).Add(time.Duration(h.Open) * time.Minute)
}

// CloseAt returns the closing instant on t's calendar day.
func (h BusinessHours) CloseAt(t time.Time) time.Time {
	return StartOfDay(t).Add(time.Duration(h.Close) * time.Minute)
}

// Contains reports whether t falls within [open, close).
func (h BusinessHours) Contains(t time.Time) bool {
	return !t.Before(h.OpenAt(t)) && t.Before(h.CloseAt(t))
}

// Outside is the complement of Contains.
func (h BusinessHours) Outside(t time.Time) bool {
	return !h.Contains(t)
}
