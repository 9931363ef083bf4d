package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac_hub/internal/models"
)

func at(hhmm string) time.Time {
	c, err := ParseClock(hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2025, 3, 14, int(c)/60, int(c)%60, 42, 0, time.UTC)
}

func TestIsActive_Disabled(t *testing.T) {
	s := models.ScheduleSettings{Enabled: false, StartTime: "00:00", EndTime: "23:59"}
	for _, now := range []string{"00:00", "12:00", "23:58"} {
		got, err := IsActive(s, at(now))
		require.NoError(t, err)
		assert.False(t, got.Active, now)
		assert.Nil(t, got.WithinWindow, now)
	}
}

func TestIsActive_Windows(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		now        string
		want       bool
	}{
		{"same day inside", "08:00", "20:00", "12:00", true},
		{"same day at start", "08:00", "20:00", "08:00", true},
		{"same day at end", "08:00", "20:00", "20:00", false},
		{"same day after", "08:00", "20:00", "21:00", false},
		{"same day before", "08:00", "20:00", "07:59", false},
		{"overnight late evening", "23:00", "05:00", "23:30", true},
		{"overnight at start", "23:00", "05:00", "23:00", true},
		{"overnight before end", "23:00", "05:00", "04:59", true},
		{"overnight at end", "23:00", "05:00", "05:00", false},
		{"overnight midday", "23:00", "05:00", "12:00", false},
		{"overnight midnight", "23:00", "05:00", "00:00", true},
		{"zero length", "10:00", "10:00", "10:00", false},
		{"zero length elsewhere", "10:00", "10:00", "03:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := models.ScheduleSettings{Enabled: true, StartTime: tc.start, EndTime: tc.end}
			got, err := IsActive(s, at(tc.now))
			require.NoError(t, err)
			require.NotNil(t, got.WithinWindow)
			assert.Equal(t, tc.want, got.Active)
			assert.Equal(t, tc.want, *got.WithinWindow)
		})
	}
}

func TestIsActive_MalformedTimes(t *testing.T) {
	_, err := IsActive(models.ScheduleSettings{Enabled: true, StartTime: "7:00", EndTime: "08:00"}, at("07:30"))
	assert.Error(t, err)

	_, err = IsActive(models.ScheduleSettings{Enabled: true, StartTime: "07:00", EndTime: "24:00"}, at("07:30"))
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	valid := map[string]Clock{"00:00": 0, "05:07": 307, "23:59": 1439, "12:30": 750}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	for _, in := range []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "12:30:00", " 12:30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestClockOf_UsesLocation(t *testing.T) {
	utc := time.Date(2025, 1, 1, 22, 15, 0, 0, time.UTC)
	plus3 := utc.In(time.FixedZone("UTC+3", 3*3600))
	assert.Equal(t, "22:15", ClockOf(utc).String())
	assert.Equal(t, "01:15", ClockOf(plus3).String())
}
