// Package calendar resolves reference dates into inclusive date windows.
//
// All arithmetic is done on civil dates. The only conversion from an instant to a
// date happens in Clock, which pins it to one configured zone.
package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
)

type Timeframe string

const (
	Day   Timeframe = "day"
	Week  Timeframe = "week"
	Month Timeframe = "month"
	Year  Timeframe = "year"
)

func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case Day, Week, Month, Year:
		return tf, nil
	}
	return "", fmt.Errorf("%w: %q", errorvalues.ErrInvalidTimeframe, s)
}

// Window is an inclusive [Start, End] range of civil dates.
type Window struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// NewWindow validates bounds. End before Start is ErrInvalidRange.
func NewWindow(start, end civil.Date) (Window, error) {
	if !start.IsValid() || !end.IsValid() {
		return Window{}, fmt.Errorf("%w: bounds %s..%s", errorvalues.ErrInvalidRange, start, end)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: end %s is before start %s", errorvalues.ErrInvalidRange, end, start)
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Overlaps reports whether [start, end] intersects the window.
func (w Window) Overlaps(start, end civil.Date) bool {
	return !start.After(w.End) && !end.Before(w.Start)
}

// Len is the number of days in the window, both ends included.
func (w Window) Len() int {
	return w.End.DaysSince(w.Start) + 1
}

// Days lists every date of the window in ascending order.
func (w Window) Days() []civil.Date {
	days := make([]civil.Date, 0, w.Len())
	for d := w.Start; !d.After(w.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (w Window) String() string {
	return w.Start.String() + ".." + w.End.String()
}

func DayWindow(ref civil.Date) Window {
	return Window{Start: ref, End: ref}
}

// WeekWindow is the Monday..Sunday week containing ref.
func WeekWindow(ref civil.Date) Window {
	monday := ref.AddDays(mondayOffset(Weekday(ref)))
	return Window{Start: monday, End: monday.AddDays(6)}
}

func MonthWindow(ref civil.Date) Window {
	first := civil.Date{Year: ref.Year, Month: ref.Month, Day: 1}
	// Day 0 of the next month normalizes to the last day of this one.
	last := civil.DateOf(time.Date(ref.Year, ref.Month+1, 0, 0, 0, 0, 0, time.UTC))
	return Window{Start: first, End: last}
}

// TrailingYearWindow is the 365 days ending at ref. Used by the activity heatmap.
func TrailingYearWindow(ref civil.Date) Window {
	return Window{Start: ref.AddDays(-364), End: ref}
}

// CalendarYearWindow is Jan 1..Dec 31 of ref's year. Used by insight summaries.
func CalendarYearWindow(ref civil.Date) Window {
	return Window{
		Start: civil.Date{Year: ref.Year, Month: time.January, Day: 1},
		End:   civil.Date{Year: ref.Year, Month: time.December, Day: 31},
	}
}

// ResolveWindow maps a timeframe to its window around ref. Year means the calendar year.
func ResolveWindow(tf Timeframe, ref civil.Date) (Window, error) {
	return resolve(tf, ref, CalendarYearWindow)
}

// ResolveActivityWindow is ResolveWindow for the heatmap, where year means the trailing 365 days.
func ResolveActivityWindow(tf Timeframe, ref civil.Date) (Window, error) {
	return resolve(tf, ref, TrailingYearWindow)
}

func resolve(tf Timeframe, ref civil.Date, year func(civil.Date) Window) (Window, error) {
	if !ref.IsValid() {
		return Window{}, fmt.Errorf("%w: %s", errorvalues.ErrInvalidDate, ref)
	}
	switch tf {
	case Day:
		return DayWindow(ref), nil
	case Week:
		return WeekWindow(ref), nil
	case Month:
		return MonthWindow(ref), nil
	case Year:
		return year(ref), nil
	}
	return Window{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidTimeframe, tf)
}

// Weekday of a civil date, Sunday = 0.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

func mondayOffset(dow time.Weekday) int {
	if dow == time.Sunday {
		return -6
	}
	return 1 - int(dow)
}

// ParseDate reads a YYYY-MM-DD date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, s)
	}
	return d, nil
}
