package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sf-server/models/schedule"
)

func TestValidate_WellFormedSchedule(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {
				IsOpen: true, OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []schedule.RawBreak{{Start: "13:00", End: "14:00"}},
			},
			"friday": {HasPeriods: true, Periods: []schedule.RawPeriod{
				{Open: "10:00", Close: "13:00"},
				{Open: "15:00", Close: "20:00"},
			}},
		},
	}

	res := Validate(raw)

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_MissingDaysAreClosedNotErrors(t *testing.T) {
	res := Validate(schedule.RawWeeklySchedule{Days: map[string]schedule.RawDay{}})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_OpenDayRequiresValidTimes(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {IsOpen: true, OpenTime: "9:00", CloseTime: ""},
		},
	}

	res := Validate(raw)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "openTime", res.Errors[0].Field)
	assert.Equal(t, "closeTime", res.Errors[1].Field)
}

func TestValidate_PeriodTimesAreChecked(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"friday": {HasPeriods: true, Periods: []schedule.RawPeriod{
				{Open: "10:00", Close: "25:00"},
			}},
		},
	}

	res := Validate(raw)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "friday", res.Errors[0].Day)
	assert.Equal(t, "periods[0].close", res.Errors[0].Field)
}

func TestValidate_MalformedBreakIsAnError(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {
				IsOpen: true, OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []schedule.RawBreak{{Start: "13:00", End: "25:99"}},
			},
		},
	}

	res := Validate(raw)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "breaks[0]", res.Errors[0].Field)
}

func TestValidate_BreakOutsideEnvelopeIsAWarning(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {
				IsOpen: true, OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []schedule.RawBreak{{Start: "08:00", End: "10:00"}},
			},
		},
	}

	res := Validate(raw)

	assert.True(t, res.Valid, "envelope problems do not block persistence")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "breaks", res.Warnings[0].Field)
}

func TestValidate_OverlappingBreaksAreAWarning(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {
				IsOpen: true, OpenTime: "09:00", CloseTime: "20:00",
				Breaks: []schedule.RawBreak{
					{Start: "12:00", End: "14:00"},
					{Start: "13:00", End: "15:00"},
				},
			},
		},
	}

	res := Validate(raw)

	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "break windows overlap", res.Warnings[0].Message)
}

func TestValidate_ExtraPeriodsAreAWarning(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"saturday": {HasPeriods: true, Periods: []schedule.RawPeriod{
				{Open: "08:00", Close: "11:00"},
				{Open: "12:00", Close: "15:00"},
				{Open: "16:00", Close: "19:00"},
			}},
		},
	}

	res := Validate(raw)

	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "periods", res.Warnings[0].Field)
	assert.Contains(t, res.Warnings[0].Message, "1 will be dropped")
}

func TestValidate_IgnoredDataIsAWarning(t *testing.T) {
	raw := schedule.RawWeeklySchedule{
		Days: map[string]schedule.RawDay{
			"monday": {IsOpen: false, Breaks: []schedule.RawBreak{{Start: "13:00", End: "14:00"}}},
			"tuesday": {HasPeriods: true, Closed: true, Periods: []schedule.RawPeriod{
				{Open: "09:00", Close: "17:00"},
			}},
		},
	}

	res := Validate(raw)

	assert.True(t, res.Valid)
	assert.Len(t, res.Warnings, 2)
}
