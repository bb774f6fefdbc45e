package calendar

import (
	"errors"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
)

const DefaultZone = "Asia/Ho_Chi_Minh"

// Clock turns wall-clock time into today's date in a fixed zone.
// Engine packages never read time themselves; callers pass Clock.Today() in.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(zone string) (*Clock, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, errors.New("loading timezone error: " + err.Error())
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// WithNow returns a copy of the clock reading time from now.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{loc: c.loc, now: now}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() civil.Date {
	return civil.DateOf(c.Now())
}

var (
	shortLabelsVN = [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}
	shortLabelsEN = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

type WeekDay struct {
	Date       civil.Date `json:"date"`
	DayOfMonth int        `json:"day_of_month"`
	Label      string     `json:"label"`
	LabelEn    string     `json:"label_en"`
	IsToday    bool       `json:"is_today"`
}

// WeekDays lists Monday..Sunday of today's week for the calendar strip.
func WeekDays(today civil.Date) []WeekDay {
	days := WeekWindow(today).Days()
	res := make([]WeekDay, 0, len(days))
	for _, d := range days {
		dow := Weekday(d)
		res = append(res, WeekDay{
			Date:       d,
			DayOfMonth: d.Day,
			Label:      shortLabelsVN[dow],
			LabelEn:    shortLabelsEN[dow],
			IsToday:    d == today,
		})
	}
	return res
}
