package service

import (
	"errors"
	"testing"
	"time"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"from_zero_with_volume", 10, 0, 100},
		{"from_zero_no_volume", 0, 0, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentChange(tt.current, tt.previous); got != tt.want {
				t.Fatalf("percentChange(%v, %v) want %v got %v", tt.current, tt.previous, tt.want, got)
			}
		})
	}
}

func TestBuildMetricFormatsPercent(t *testing.T) {
	metric := buildMetric(150, 100)
	if metric.Current != 150 || metric.Previous != 100 {
		t.Fatalf("metric values mismatch: %+v", metric)
	}
	if metric.PercentChange != "50.00" {
		t.Fatalf("percent change want 50.00 got %s", metric.PercentChange)
	}
}

func TestResolveDashboardWindowRanges(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	window, err := resolveDashboardWindow(DashboardQueryInput{Range: "today", Timezone: "UTC"}, now)
	if err != nil {
		t.Fatalf("today window failed: %v", err)
	}
	if window.startAt.Hour() != 0 || !window.endAt.Equal(window.startAt.AddDate(0, 0, 1)) {
		t.Fatalf("today window mismatch: %v - %v", window.startAt, window.endAt)
	}

	window, err = resolveDashboardWindow(DashboardQueryInput{Timezone: "UTC"}, now)
	if err != nil {
		t.Fatalf("default window failed: %v", err)
	}
	if days := window.endAt.Sub(window.startAt).Hours() / 24; days != 7 {
		t.Fatalf("default range should cover 7 days, got %v", days)
	}

	if _, err := resolveDashboardWindow(DashboardQueryInput{Range: "90d"}, now); !errors.Is(err, ErrDashboardRangeInvalid) {
		t.Fatalf("unsupported range want ErrDashboardRangeInvalid got %v", err)
	}
}

func TestResolveDashboardWindowCustom(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC)

	window, err := resolveDashboardWindow(DashboardQueryInput{Range: "custom", From: &from, To: &to, Timezone: "UTC"}, now)
	if err != nil {
		t.Fatalf("custom window failed: %v", err)
	}
	if !window.startAt.Equal(from) || !window.endAt.After(to) {
		t.Fatalf("custom window mismatch: %v - %v", window.startAt, window.endAt)
	}

	if _, err := resolveDashboardWindow(DashboardQueryInput{Range: "custom", From: &from}, now); !errors.Is(err, ErrDashboardRangeInvalid) {
		t.Fatalf("missing bound want ErrDashboardRangeInvalid got %v", err)
	}
	if _, err := resolveDashboardWindow(DashboardQueryInput{Range: "custom", From: &to, To: &from}, now); !errors.Is(err, ErrDashboardRangeInvalid) {
		t.Fatalf("inverted bounds want ErrDashboardRangeInvalid got %v", err)
	}

	farTo := from.AddDate(1, 0, 0)
	if _, err := resolveDashboardWindow(DashboardQueryInput{Range: "custom", From: &from, To: &farTo}, now); !errors.Is(err, ErrDashboardRangeInvalid) {
		t.Fatalf("over-long custom range want ErrDashboardRangeInvalid got %v", err)
	}
}

func TestResolveDashboardLocationFallsBack(t *testing.T) {
	if loc := resolveDashboardLocation(""); loc != time.Local {
		t.Fatalf("empty timezone should fall back to local, got %v", loc)
	}
	if loc := resolveDashboardLocation("Not/AZone"); loc != time.Local {
		t.Fatalf("bad timezone should fall back to local, got %v", loc)
	}
	if loc := resolveDashboardLocation("Asia/Ho_Chi_Minh"); loc.String() != "Asia/Ho_Chi_Minh" {
		t.Fatalf("valid timezone should load, got %v", loc)
	}
}
