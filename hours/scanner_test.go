package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sf-server/models/schedule"
)

// sunday returns 2024-01-07 (a Sunday) at the given clock time, UTC.
func sunday(hour, min int) time.Time {
	return time.Date(2024, 1, 7, hour, min, 0, 0, time.UTC)
}

func TestNextChange_OpenNowClosesAtDayEnd(t *testing.T) {
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {IsOpen: true, Open: "09:00", Close: "17:00"},
	})

	change := NextChange(ws, monday(12, 0))

	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindClose, change.Kind)
	assert.Equal(t, monday(17, 0), change.At)
	assert.Equal(t, "Cierra a las 17:00", change.Message)
	assert.True(t, change.IsToday)
}

func TestNextChange_OpenNowClosesAtBreakStart(t *testing.T) {
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {
			IsOpen: true, Open: "09:00", Close: "22:00",
			Breaks: []schedule.BreakWindow{{Start: "13:00", End: "14:00"}},
		},
	})

	change := NextChange(ws, monday(11, 0))

	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindClose, change.Kind)
	assert.Equal(t, monday(13, 0), change.At)
	assert.Equal(t, "Cierra a las 13:00", change.Message)

	// After the break, the remaining close candidate is the day end.
	change = NextChange(ws, monday(15, 0))
	require.NotNil(t, change)
	assert.Equal(t, monday(22, 0), change.At)
	assert.Equal(t, "Cierra a las 22:00", change.Message)
}

func TestNextChange_OvernightCloseLandsOnTomorrow(t *testing.T) {
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {IsOpen: true, Open: "22:00", Close: "02:00", CrossesMidnight: true},
	})

	// Before midnight the close instant is on tomorrow's date.
	change := NextChange(ws, monday(23, 0))
	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindClose, change.Kind)
	assert.Equal(t, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), change.At)
	assert.False(t, change.IsToday)

	// After midnight it is on today's date.
	change = NextChange(ws, monday(1, 0))
	require.NotNil(t, change)
	assert.Equal(t, time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), change.At)
	assert.True(t, change.IsToday)
}

func TestNextChange_OpensLaterToday(t *testing.T) {
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {IsOpen: true, Open: "09:00", Close: "17:00"},
	})

	change := NextChange(ws, monday(7, 0))

	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindOpen, change.Kind)
	assert.Equal(t, monday(9, 0), change.At)
	assert.Equal(t, "Abre a las 09:00", change.Message)
	assert.True(t, change.IsToday)
}

func TestNextChange_TomorrowAcrossTheWeekBoundary(t *testing.T) {
	// Sunday evening, Sunday closed, Monday opens at 09:00.
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {IsOpen: true, Open: "09:00", Close: "17:00"},
	})

	change := NextChange(ws, sunday(23, 0))

	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindOpen, change.Kind)
	assert.Equal(t, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), change.At)
	assert.Contains(t, change.Message, "mañana")
	assert.False(t, change.IsToday)
}

func TestNextChange_ScanNamesTheWeekday(t *testing.T) {
	// Monday evening after close; next open day is Thursday.
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday":   {IsOpen: true, Open: "09:00", Close: "17:00"},
		"thursday": {IsOpen: true, Open: "10:00", Close: "18:00"},
	})

	change := NextChange(ws, monday(20, 0))

	require.NotNil(t, change)
	assert.Equal(t, schedule.ChangeKindOpen, change.Kind)
	assert.Equal(t, time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC), change.At)
	assert.Equal(t, "Abre el jueves a las 10:00", change.Message)
}

func TestNextChange_FullyClosedWeekIsNil(t *testing.T) {
	assert.Nil(t, NextChange(closedWeek(), monday(12, 0)))
}

func TestNextChange_SkipsDegradedDaysDuringScan(t *testing.T) {
	// Tuesday claims to be open but carries a broken time; Wednesday is the
	// first usable day.
	ws := weekWith(map[string]schedule.DaySchedule{
		"tuesday":   {IsOpen: true, Open: "soon", Close: "later"},
		"wednesday": {IsOpen: true, Open: "08:30", Close: "16:00"},
	})

	change := NextChange(ws, monday(20, 0))

	require.NotNil(t, change)
	assert.Equal(t, time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC), change.At)
	assert.Equal(t, "Abre el miércoles a las 08:30", change.Message)
}

func TestNextChange_PicksEarliestUpcomingBreak(t *testing.T) {
	ws := weekWith(map[string]schedule.DaySchedule{
		"monday": {
			IsOpen: true, Open: "08:00", Close: "22:00",
			Breaks: []schedule.BreakWindow{
				{Start: "18:00", End: "19:00"},
				{Start: "12:00", End: "13:00"},
			},
		},
	})

	change := NextChange(ws, monday(10, 0))

	require.NotNil(t, change)
	assert.Equal(t, monday(12, 0), change.At)
	assert.Equal(t, "Cierra a las 12:00", change.Message)
}
