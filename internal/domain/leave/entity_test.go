package leave

import (
	"testing"
	"time"
)

func d(day int) time.Time {
	return time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC)
}

func TestLeaveRequestCovers(t *testing.T) {
	req := LeaveRequest{StartDate: d(15), EndDate: d(17)}

	cases := []struct {
		date time.Time
		want bool
	}{
		{d(14), false},
		{d(15), true},
		{d(16), true},
		{d(17), true},
		{d(18), false},
		{d(17).Add(23 * time.Hour), true}, // time component ignored
	}
	for _, c := range cases {
		if got := req.Covers(c.date); got != c.want {
			t.Errorf("Covers(%v) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestLeaveRequestOverlaps(t *testing.T) {
	monthStart, monthEnd := d(1), d(31)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", d(10), d(12), true},
		{"spans start boundary", time.Date(2025, time.July, 28, 0, 0, 0, 0, time.UTC), d(2), true},
		{"spans end boundary", d(30), time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC), true},
		{"single day on boundary", d(31), d(31), true},
		{"entirely before", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC), false},
		{"entirely after", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), false},
	}
	for _, c := range cases {
		req := LeaveRequest{StartDate: c.start, EndDate: c.end}
		if got := req.Overlaps(monthStart, monthEnd); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}
