package calendar_test

import (
	"testing"
	"time"

	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockToday(t *testing.T) {
	clock, err := calendar.NewClock("")
	require.NoError(t, err)
	// 18:30 UTC is already the next day in UTC+7.
	fixed := clock.WithNow(func() time.Time {
		return time.Date(2024, time.February, 24, 18, 30, 0, 0, time.UTC)
	})
	assert.Equal(t, "2024-02-25", fixed.Today().String())
	assert.Equal(t, calendar.DefaultZone, fixed.Location().String())

	utc, err := calendar.NewClock("UTC")
	require.NoError(t, err)
	fixedUTC := utc.WithNow(func() time.Time {
		return time.Date(2024, time.February, 24, 18, 30, 0, 0, time.UTC)
	})
	assert.Equal(t, "2024-02-24", fixedUTC.Today().String())
}

func TestNewClockUnknownZone(t *testing.T) {
	_, err := calendar.NewClock("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestWeekDays(t *testing.T) {
	days := calendar.WeekDays(date(t, "2024-02-24"))
	require.Len(t, days, 7)
	assert.Equal(t, "2024-02-19", days[0].Date.String())
	assert.Equal(t, "T2", days[0].Label)
	assert.Equal(t, "Mon", days[0].LabelEn)
	assert.Equal(t, "CN", days[6].Label)
	assert.Equal(t, 25, days[6].DayOfMonth)
	for i, d := range days {
		assert.Equal(t, i == 5, d.IsToday, d.Date.String())
	}
}
