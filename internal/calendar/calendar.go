// Package calendar groups events by local calendar day and lays them out as month grids.
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"founderhub/internal/model"
)

const dateLayout = "2006-01-02"

// maxSpanDays caps how many days a single event is spread over when no window clips it.
const maxSpanDays = 366

var (
	ErrInvalidMonth     = errors.New("invalid year or month")
	ErrInvalidWeekStart = errors.New("invalid week start")
)

// DayGroup is one calendar day and the events touching it.
type DayGroup struct {
	Date   string        `json:"date"`
	Events []model.Event `json:"events"`
}

// Day is a cell of a month grid.
type Day struct {
	Date    string        `json:"date"`
	Day     int           `json:"day"`
	InMonth bool          `json:"in_month"`
	IsToday bool          `json:"is_today"`
	Events  []model.Event `json:"events"`
}

// Week is a row of seven days starting on the grid's week start.
type Week struct {
	Days []Day `json:"days"`
}

// Month is a full grid; padding days from the neighbouring months have InMonth=false.
type Month struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	WeekStart string `json:"week_start"`
	Weeks     []Week `json:"weeks"`
}

// ParseWeekStart accepts an English weekday name or its three-letter prefix; "" means Sunday.
func ParseWeekStart(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekStart, s)
}

// GridRange returns the half-open interval [from, to) covered by the month grid,
// padding included. Callers use it to fetch exactly the events the grid can show.
func GridRange(year int, month time.Month, weekStart time.Weekday, loc *time.Location) (time.Time, time.Time, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d-%02d", ErrInvalidMonth, year, int(month))
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d", ErrInvalidWeekStart, int(weekStart))
	}
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	trail := (int(weekStart) + 6 - int(last.Weekday()) + 7) % 7

	return first.AddDate(0, 0, -lead), last.AddDate(0, 0, trail+1), nil
}

// MonthGrid lays events out over the weeks covering the month.
// today decides the IsToday flag and is interpreted in loc.
func MonthGrid(year int, month time.Month, weekStart time.Weekday, events []model.Event, loc *time.Location, today time.Time) (*Month, error) {
	if loc == nil {
		loc = time.UTC
	}
	from, to, err := GridRange(year, month, weekStart, loc)
	if err != nil {
		return nil, err
	}

	byDay := index(events, loc, window{from: from, to: to})
	todayKey := today.In(loc).Format(dateLayout)

	m := &Month{Year: year, Month: int(month), WeekStart: weekStart.String()}
	var week Week
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		evs := byDay[key]
		if evs == nil {
			evs = []model.Event{}
		}
		week.Days = append(week.Days, Day{
			Date:    key,
			Day:     d.Day(),
			InMonth: d.Month() == month,
			IsToday: key == todayKey,
			Events:  evs,
		})
		if len(week.Days) == 7 {
			m.Weeks = append(m.Weeks, week)
			week = Week{}
		}
	}
	return m, nil
}

// GroupByDay returns one group per local day that has events, in date order.
// Multi-day events appear under every day they span, up to maxSpanDays.
func GroupByDay(events []model.Event, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.UTC
	}
	return sortedGroups(index(events, loc, window{}))
}

// GroupWithin is GroupByDay restricted to the local days overlapping [from, to).
// Days of a multi-day event outside the window are left out, however long the event is.
func GroupWithin(events []model.Event, loc *time.Location, from, to time.Time) []DayGroup {
	if loc == nil {
		loc = time.UTC
	}
	if !to.After(from) {
		return []DayGroup{}
	}
	lo := midnight(from.In(loc))
	hi := midnight(to.In(loc))
	if !hi.Equal(to) {
		hi = hi.AddDate(0, 0, 1)
	}
	return sortedGroups(index(events, loc, window{from: lo, to: hi}))
}

func sortedGroups(byDay map[string][]model.Event) []DayGroup {
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DayGroup, 0, len(keys))
	for _, k := range keys {
		out = append(out, DayGroup{Date: k, Events: byDay[k]})
	}
	return out
}

// window is a half-open range of local midnights; the zero value is unbounded.
type window struct {
	from, to time.Time
}

func (w window) bounded() bool { return !w.from.IsZero() }

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// index maps local date keys to the events occurring on that date, each list sorted.
func index(events []model.Event, loc *time.Location, w window) map[string][]model.Event {
	out := make(map[string][]model.Event)
	for _, e := range events {
		for _, key := range spanDays(e, loc, w) {
			out[key] = append(out[key], e)
		}
	}
	for _, evs := range out {
		sort.SliceStable(evs, func(i, j int) bool {
			if !evs[i].StartsAt.Equal(evs[j].StartsAt) {
				return evs[i].StartsAt.Before(evs[j].StartsAt)
			}
			if evs[i].Title != evs[j].Title {
				return evs[i].Title < evs[j].Title
			}
			return evs[i].ID < evs[j].ID
		})
	}
	return out
}

// spanDays lists the local dates an event occupies, clipped to w when it is bounded.
// An event ending exactly at local midnight does not occupy the day it ends on.
func spanDays(e model.Event, loc *time.Location, w window) []string {
	day := midnight(e.StartsAt.In(loc))

	lastDay := day
	if e.EndsAt != nil && e.EndsAt.After(e.StartsAt) {
		end := e.EndsAt.In(loc)
		lastDay = midnight(end)
		if end.Equal(lastDay) {
			lastDay = lastDay.AddDate(0, 0, -1)
		}
		if lastDay.Before(day) {
			lastDay = day
		}
	}

	if w.bounded() {
		if day.Before(w.from) {
			day = w.from
		}
		if !lastDay.Before(w.to) {
			lastDay = w.to.AddDate(0, 0, -1)
		}
	} else if capped := day.AddDate(0, 0, maxSpanDays-1); lastDay.After(capped) {
		lastDay = capped
	}

	var keys []string
	for d := day; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dateLayout))
	}
	return keys
}
