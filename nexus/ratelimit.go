package nexus

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Window selects one of the two independent rate-limit windows the API
// maintains per key.
type Window int

const (
	Hourly Window = iota
	Daily
)

func (w Window) String() string {
	if w == Daily {
		return "daily"
	}
	return "hourly"
}

// WindowLimits is the counter state of a single window.
type WindowLimits struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// RateLimits is a read-only snapshot of both windows, parsed from the
// X-RL-* headers of a single response. Snapshots are independent; there
// is no aggregation across calls.
type RateLimits struct {
	hourly WindowLimits
	daily  WindowLimits
}

// Window returns the counters of the selected window.
func (r RateLimits) Window(w Window) WindowLimits {
	if w == Daily {
		return r.daily
	}
	return r.hourly
}

func (r RateLimits) Hourly() WindowLimits {
	return r.hourly
}

func (r RateLimits) Daily() WindowLimits {
	return r.daily
}

// ParseRateLimits reads both rate-limit windows from response headers.
// It fails when a header is missing or malformed; responses without the
// X-RL-* headers carry no snapshot.
func ParseRateLimits(h http.Header) (RateLimits, error) {
	hourly, err := parseWindow(h, "X-RL-Hourly")
	if err != nil {
		return RateLimits{}, err
	}
	daily, err := parseWindow(h, "X-RL-Daily")
	if err != nil {
		return RateLimits{}, err
	}
	return RateLimits{hourly: hourly, daily: daily}, nil
}

func parseWindow(h http.Header, prefix string) (WindowLimits, error) {
	limit, err := headerInt(h, prefix+"-Limit")
	if err != nil {
		return WindowLimits{}, err
	}
	remaining, err := headerInt(h, prefix+"-Remaining")
	if err != nil {
		return WindowLimits{}, err
	}
	raw := h.Get(prefix + "-Reset")
	if raw == "" {
		return WindowLimits{}, fmt.Errorf("rate limit header %s-Reset is missing", prefix)
	}
	var reset time.Time
	var parseErr error
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			reset = t
			parseErr = nil
			break
		} else {
			parseErr = err
		}
	}
	if parseErr != nil {
		return WindowLimits{}, fmt.Errorf("rate limit header %s-Reset: unrecognized time %q", prefix, raw)
	}
	return WindowLimits{Limit: limit, Remaining: remaining, Reset: reset}, nil
}

func headerInt(h http.Header, key string) (int, error) {
	raw := h.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("rate limit header %s is missing", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("rate limit header %s: %w", key, err)
	}
	return n, nil
}
