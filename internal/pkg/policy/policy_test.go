package policy

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, StatusAbsent},
		{3.5, StatusAbsent},
		{3.99, StatusAbsent},
		{4, StatusHalfDay},
		{4.01, StatusHalfDay},
		{7.99, StatusHalfDay},
		{8, StatusPresent},
		{8.5, StatusPresent},
		{12, StatusPresent},
	}
	for _, c := range cases {
		got := ClassifyStatus(c.hours)
		if got != c.want {
			t.Errorf("ClassifyStatus(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestWorkingHours(t *testing.T) {
	cases := []struct {
		signIn  string
		signOut string
		want    float64
	}{
		{"2024-01-10 09:00:00", "2024-01-10 17:30:00", 8.5},
		{"2024-01-10 09:00:00", "2024-01-10 12:30:00", 3.5},
		{"2024-01-10 09:00:00", "2024-01-10 09:00:00", 0},
		{"2024-01-10 09:00:00", "2024-01-10 09:05:00", 0.08},
		{"2024-01-10 08:15:00", "2024-01-10 17:00:00", 8.75},
	}
	for _, c := range cases {
		in, _ := time.Parse("2006-01-02 15:04:05", c.signIn)
		out, _ := time.Parse("2006-01-02 15:04:05", c.signOut)
		got := WorkingHours(in, out)
		if got != c.want {
			t.Errorf("WorkingHours(%s, %s) = %v, want %v", c.signIn, c.signOut, got, c.want)
		}
	}
}

func TestInclusiveDayCount(t *testing.T) {
	cases := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-01-10", "2024-01-10", 1},
		{"2024-01-10", "2024-01-11", 2},
		{"2024-01-11", "2024-01-15", 5},
		{"2024-01-01", "2024-01-31", 31},
		{"2024-02-28", "2024-03-01", 3}, // leap year
	}
	for _, c := range cases {
		got := InclusiveDayCount(date(c.start), date(c.end))
		if got != c.want {
			t.Errorf("InclusiveDayCount(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		s1, e1, s2, e2 string
		want           bool
	}{
		{"2024-01-11", "2024-01-15", "2024-01-10", "2024-01-12", true},
		{"2024-01-11", "2024-01-15", "2024-01-16", "2024-01-18", false},
		{"2024-01-11", "2024-01-15", "2024-01-15", "2024-01-18", true}, // boundary touch
		{"2024-01-11", "2024-01-15", "2024-01-08", "2024-01-11", true}, // boundary touch
		{"2024-01-11", "2024-01-15", "2024-01-12", "2024-01-13", true}, // contained
		{"2024-01-11", "2024-01-11", "2024-01-11", "2024-01-11", true}, // same day
		{"2024-01-01", "2024-01-05", "2024-01-06", "2024-01-10", false},
	}
	for _, c := range cases {
		got := RangesOverlap(date(c.s1), date(c.e1), date(c.s2), date(c.e2))
		if got != c.want {
			t.Errorf("RangesOverlap(%s-%s, %s-%s) = %v, want %v", c.s1, c.e1, c.s2, c.e2, got, c.want)
		}
	}
}
