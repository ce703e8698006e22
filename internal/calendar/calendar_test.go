package calendar

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   string
		want   int
		wantOK bool
	}{
		{"same day", "2024-03-10", "2024-03-10", 0, true},
		{"forward", "2024-03-01", "2024-03-10", 9, true},
		{"backward", "2024-03-10", "2024-03-01", -9, true},
		{"across leap day", "2024-02-28", "2024-03-01", 2, true},
		{"malformed", "2024-3-1", "2024-03-10", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DaysBetween(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("Expected %d days, got %d", tt.want, got)
			}
		})
	}
}

func TestMostRecentMonday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		want string
	}{
		{"2024-06-10", "2024-06-10"}, // Monday
		{"2024-06-12", "2024-06-10"}, // Wednesday
		{"2024-06-16", "2024-06-10"}, // Sunday
		{"2024-06-17", "2024-06-17"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.date, func(t *testing.T) {
			t.Parallel()
			if got := MostRecentMonday(tt.date); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestToday_UsesZone(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)

	if got := Today(now, ""); got != "2024-06-10" {
		t.Errorf("Expected UTC date 2024-06-10, got %s", got)
	}
	if got := Today(now, "America/New_York"); got != "2024-06-09" {
		t.Errorf("Expected New York date 2024-06-09, got %s", got)
	}
	if got := Today(now, "Not/AZone"); got != "2024-06-10" {
		t.Errorf("Expected fallback to UTC, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	if got := AddDays("2024-12-31", 1); got != "2025-01-01" {
		t.Errorf("Expected 2025-01-01, got %s", got)
	}
	if got := AddDays("2024-03-01", -1); got != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}
	if got := AddDays("garbage", 3); got != "garbage" {
		t.Errorf("Expected malformed input unchanged, got %s", got)
	}
}
