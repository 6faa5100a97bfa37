package hours

import (
	"sf-server/models/schedule"
)

// Normalize converts a stored schedule document, whichever of the two shapes
// each day uses, into the canonical WeeklySchedule every other component of
// the engine operates on.
//
// Normalize is total: it never fails. Days that are missing, malformed, or
// carry broken time strings degrade to closed days instead of poisoning the
// rest of the schedule. Normalizing an already-canonical schedule is a no-op.
func Normalize(raw schedule.RawWeeklySchedule) schedule.WeeklySchedule {
	ws := schedule.WeeklySchedule{
		Days:     make(map[string]schedule.DaySchedule, len(schedule.DayNames)),
		Timezone: raw.Timezone,
	}
	for _, day := range schedule.DayNames {
		rd, ok := raw.Days[day]
		if !ok {
			ws.Days[day] = schedule.DaySchedule{}
			continue
		}
		ws.Days[day] = normalizeDay(rd)
	}
	return ws
}

func normalizeDay(rd schedule.RawDay) schedule.DaySchedule {
	if rd.HasPeriods {
		return normalizePeriodDay(rd)
	}
	return normalizeSimpleDay(rd)
}

// normalizeSimpleDay handles the isOpen/openTime/closeTime/breaks shape,
// which is already one-to-one with the canonical form.
func normalizeSimpleDay(rd schedule.RawDay) schedule.DaySchedule {
	if !rd.IsOpen {
		return schedule.DaySchedule{}
	}
	openMin, closeMin, ok := parseWindow(rd.OpenTime, rd.CloseTime)
	if !ok {
		return schedule.DaySchedule{}
	}

	var breaks []schedule.BreakWindow
	for _, b := range rd.Breaks {
		if !IsClockTime(b.Start) || !IsClockTime(b.End) {
			// A break we cannot read means we cannot tell when the store is
			// really closed within the window. Failing the day closed is the
			// safe direction.
			return schedule.DaySchedule{}
		}
		breaks = append(breaks, schedule.BreakWindow{Start: b.Start, End: b.End})
	}

	return schedule.DaySchedule{
		IsOpen:          true,
		Open:            rd.OpenTime,
		Close:           rd.CloseTime,
		CrossesMidnight: closeMin < openMin,
		Breaks:          breaks,
	}
}

// normalizePeriodDay handles the closed/periods shape. The first period
// becomes the day's primary window. A second period extends the window to its
// close and turns the gap between the two into a break. Periods beyond the
// second cannot be represented and are counted in DroppedPeriods.
func normalizePeriodDay(rd schedule.RawDay) schedule.DaySchedule {
	if rd.Closed || len(rd.Periods) == 0 {
		return schedule.DaySchedule{}
	}

	first := rd.Periods[0]
	if _, _, ok := parseWindow(first.Open, first.Close); !ok {
		return schedule.DaySchedule{}
	}

	ds := schedule.DaySchedule{
		IsOpen:          true,
		Open:            first.Open,
		Close:           first.Close,
		CrossesMidnight: first.NextDay,
	}

	if len(rd.Periods) >= 2 {
		second := rd.Periods[1]
		if _, _, ok := parseWindow(second.Open, second.Close); !ok {
			return schedule.DaySchedule{}
		}
		ds.Breaks = []schedule.BreakWindow{{Start: first.Close, End: second.Open}}
		ds.Close = second.Close
		ds.CrossesMidnight = second.NextDay
	}
	if len(rd.Periods) > 2 {
		ds.DroppedPeriods = len(rd.Periods) - 2
	}
	return ds
}

func parseWindow(open, close string) (openMin, closeMin int, ok bool) {
	openMin, errOpen := ToMinutes(open)
	closeMin, errClose := ToMinutes(close)
	if errOpen != nil || errClose != nil {
		return 0, 0, false
	}
	return openMin, closeMin, true
}
