package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("18:01")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(18*60+1), c)
	assert.Equal(t, "18:01", c.String())

	for _, bad := range []string{"", "25:00", "12:7", "noon", "12-00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseShiftTime(t *testing.T) {
	tests := []struct {
		raw       string
		wantValid bool
		wantStart string
		wantEnd   string
	}{
		{"09:00-18:00", true, "09:00", "18:00"},
		{" 11:00 - 21:30 ", true, "11:00", "21:30"},
		{"11:00~21:30", true, "11:00", "21:30"},
		{"22:00-06:00", true, "22:00", "06:00"},
		{"0900", false, "", ""},
		{"09:00-", false, "", ""},
		{"", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			shift, err := ParseShiftTime(tt.raw)
			assert.Equal(t, tt.wantValid, err == nil)
			assert.Equal(t, tt.wantValid, shift.Valid)
			assert.Equal(t, tt.wantStart, shift.StartText())
			assert.Equal(t, tt.wantEnd, shift.EndText())
			assert.Equal(t, tt.raw, shift.Raw)
		})
	}
}

func TestShiftTime_Covers(t *testing.T) {
	day, _ := ParseShiftTime("09:00-18:00")

	assert.True(t, day.Covers(mustClock(t, "12:00")))
	assert.True(t, day.Covers(mustClock(t, "09:00")))
	assert.True(t, day.Covers(mustClock(t, "18:00")), "下班时刻应包含在内")
	assert.False(t, day.Covers(mustClock(t, "18:01")))
	assert.False(t, day.Covers(mustClock(t, "08:59")))

	night, _ := ParseShiftTime("22:00-06:00")
	assert.True(t, night.Covers(mustClock(t, "23:30")))
	assert.True(t, night.Covers(mustClock(t, "05:00")))
	assert.False(t, night.Covers(mustClock(t, "12:00")))

	broken, _ := ParseShiftTime("all day")
	assert.False(t, broken.Covers(mustClock(t, "12:00")))
	assert.True(t, broken.Malformed())
}

func TestShiftTime_Hours(t *testing.T) {
	shift, _ := ParseShiftTime("09:00-18:00")
	assert.Equal(t, "09:00~18:00", shift.Hours())

	var empty ShiftTime
	assert.Equal(t, "", empty.Hours())
	assert.False(t, empty.Malformed())
}

func TestShiftTime_ScanValue(t *testing.T) {
	var s ShiftTime
	require.NoError(t, s.Scan([]byte("10:30-19:00")))
	assert.True(t, s.Valid)
	assert.Equal(t, "10:30", s.StartText())

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30-19:00", v)

	require.NoError(t, s.Scan("bad"))
	assert.False(t, s.Valid)
	v, _ = s.Value()
	assert.Equal(t, "bad", v)

	require.NoError(t, s.Scan(nil))
	assert.False(t, s.Valid)
	v, _ = s.Value()
	assert.Nil(t, v)

	assert.Error(t, s.Scan(42))
}
