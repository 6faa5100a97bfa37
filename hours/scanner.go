package hours

import (
	"time"

	"sf-server/models/schedule"
)

// spanishWeekdays maps the logical day keys to the weekday names used in
// storefront status messages.
var spanishWeekdays = map[string]string{
	"monday":    "lunes",
	"tuesday":   "martes",
	"wednesday": "miércoles",
	"thursday":  "jueves",
	"friday":    "viernes",
	"saturday":  "sábado",
	"sunday":    "domingo",
}

// NextChange finds the next instant at which the store's state flips and
// classifies it as an open or close transition.
//
// While open, the next change is the earliest of the next break start and the
// day's closing time. While closed, the scanner first looks at the rest of
// today (break end, or an opening still ahead), then walks up to 6 subsequent
// days for the first open one. A week with no open day yields nil.
func NextChange(ws schedule.WeeklySchedule, now time.Time) *schedule.NextStatusChange {
	ds := ws.Day(dayNameFor(now))
	cur := minutesOf(now)

	if isOpenAt(ws, now) {
		return nextClose(ds, now, cur)
	}

	if ds.IsOpen {
		if change := nextOpenToday(ds, now, cur); change != nil {
			return change
		}
	}
	return nextOpenAhead(ws, now)
}

// nextClose handles the currently-open case: closing for a break, or closing
// for the day. On an overnight window the closing instant lands on tomorrow's
// date whenever now is still on the opening side of midnight.
func nextClose(ds schedule.DaySchedule, now time.Time, cur int) *schedule.NextStatusChange {
	if start, at, ok := nextBreakStart(ds, cur); ok {
		return &schedule.NextStatusChange{
			At:      instantAt(now, 0, at),
			Kind:    schedule.ChangeKindClose,
			Message: "Cierra a las " + start,
			IsToday: true,
		}
	}

	openMin, closeMin, _ := parseWindow(ds.Open, ds.Close)
	dayOffset := 0
	if closeMin < openMin && cur >= openMin {
		dayOffset = 1
	}
	return &schedule.NextStatusChange{
		At:      instantAt(now, dayOffset, closeMin),
		Kind:    schedule.ChangeKindClose,
		Message: "Cierra a las " + ds.Close,
		IsToday: dayOffset == 0,
	}
}

// nextBreakStart returns the earliest break strictly after cur, as both its
// HH:MM label and its minute offset.
func nextBreakStart(ds schedule.DaySchedule, cur int) (label string, at int, ok bool) {
	best := -1
	for _, b := range ds.Breaks {
		startMin, _, valid := parseWindow(b.Start, b.End)
		if !valid || startMin <= cur {
			continue
		}
		if best == -1 || startMin < best {
			best = startMin
			label = b.Start
		}
	}
	if best == -1 {
		return "", 0, false
	}
	return label, best, true
}

// nextOpenToday covers the two closed-but-today-still-opens cases: sitting
// inside a break, or before today's opening time.
func nextOpenToday(ds schedule.DaySchedule, now time.Time, cur int) *schedule.NextStatusChange {
	openMin, closeMin, ok := parseWindow(ds.Open, ds.Close)
	if !ok {
		return nil
	}

	if InRange(cur, openMin, closeMin) {
		for _, b := range ds.Breaks {
			if !inBreak(cur, b) {
				continue
			}
			endMin, err := ToMinutes(b.End)
			if err != nil {
				continue
			}
			return &schedule.NextStatusChange{
				At:      instantAt(now, 0, endMin),
				Kind:    schedule.ChangeKindOpen,
				Message: "Abre a las " + b.End,
				IsToday: true,
			}
		}
	}

	if cur < openMin {
		return &schedule.NextStatusChange{
			At:      instantAt(now, 0, openMin),
			Kind:    schedule.ChangeKindOpen,
			Message: "Abre a las " + ds.Open,
			IsToday: true,
		}
	}
	return nil
}

// nextOpenAhead scans the 6 days after today, in calendar order, for the
// first open day. Nothing found means the whole week is closed.
func nextOpenAhead(ws schedule.WeeklySchedule, now time.Time) *schedule.NextStatusChange {
	for offset := 1; offset <= 6; offset++ {
		day := now.AddDate(0, 0, offset)
		ds := ws.Day(dayNameFor(day))
		if !ds.IsOpen {
			continue
		}
		openMin, err := ToMinutes(ds.Open)
		if err != nil {
			continue
		}

		message := "Abre el " + spanishWeekdays[dayNameFor(day)] + " a las " + ds.Open
		if offset == 1 {
			message = "Abre mañana a las " + ds.Open
		}
		return &schedule.NextStatusChange{
			At:      instantAt(now, offset, openMin),
			Kind:    schedule.ChangeKindOpen,
			Message: message,
		}
	}
	return nil
}
