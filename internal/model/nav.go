package model

import (
	"sort"
	"time"
)

// NavPoint is one NAV observation for a mutual fund scheme.
type NavPoint struct {
	Date time.Time `json:"date"`
	Nav  float64   `json:"nav"`
}

// NavSeries holds a scheme's NAV history, ascending by date with unique
// dates. The accessor methods assume that invariant; use Sorted to
// establish it from raw input.
type NavSeries []NavPoint

// Day truncates t to midnight UTC so calendar dates compare exactly.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Sorted returns a copy of the series sorted ascending by date, with
// dates normalized to midnight UTC and duplicate dates collapsed
// (the last value seen for a date wins).
func (s NavSeries) Sorted() NavSeries {
	out := make(NavSeries, 0, len(s))
	for _, p := range s {
		out = append(out, NavPoint{Date: Day(p.Date), Nav: p.Nav})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	dedup := out[:0]
	for _, p := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Date.Equal(p.Date) {
			dedup[n-1] = p
			continue
		}
		dedup = append(dedup, p)
	}
	return dedup
}

// MaxDate returns the latest date in the series, or the zero time if the
// series is empty.
func (s NavSeries) MaxDate() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// NavOn returns the NAV recorded exactly on the given calendar date.
func (s NavSeries) NavOn(date time.Time) (float64, bool) {
	d := Day(date)
	i := sort.Search(len(s), func(i int) bool { return !s[i].Date.Before(d) })
	if i < len(s) && s[i].Date.Equal(d) {
		return s[i].Nav, true
	}
	return 0, false
}

// OnOrBefore returns the most recent point at or before the given date.
func (s NavSeries) OnOrBefore(date time.Time) (NavPoint, bool) {
	d := Day(date)
	i := sort.Search(len(s), func(i int) bool { return s[i].Date.After(d) })
	if i == 0 {
		return NavPoint{}, false
	}
	return s[i-1], true
}

// UpTo returns the sub-series with dates at or before the given date.
// The result shares the backing array and must be treated as read-only.
func (s NavSeries) UpTo(date time.Time) NavSeries {
	d := Day(date)
	i := sort.Search(len(s), func(i int) bool { return s[i].Date.After(d) })
	return s[:i]
}
