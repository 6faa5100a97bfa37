package hours

import (
	"strings"
	"time"

	"sf-server/models/schedule"
)

// Status classifies the store as open or closed at the given instant and
// attaches the next predicted transition. It is a stateless function of its
// inputs: no clock, no caching, no side effects. Callers that want a live
// badge re-invoke it on their own interval.
//
// Status never fails. If anything goes wrong while evaluating a schedule the
// safe default is returned: closed, with no predicted change. A storefront
// wrongly shown as closed is a nuisance; one wrongly shown as open misleads
// customers.
func Status(ws schedule.WeeklySchedule, now time.Time) (st schedule.StoreStatus) {
	defer func() {
		if r := recover(); r != nil {
			st = schedule.StoreStatus{}
		}
	}()
	st.IsOpen = isOpenAt(ws, now)
	st.NextChange = NextChange(ws, now)
	return st
}

// isOpenAt is the OPEN/CLOSED classifier: inside today's open window and not
// inside any break window.
func isOpenAt(ws schedule.WeeklySchedule, now time.Time) bool {
	ds := ws.Day(dayNameFor(now))
	if !ds.IsOpen {
		return false
	}
	openMin, closeMin, ok := parseWindow(ds.Open, ds.Close)
	if !ok {
		return false
	}

	cur := minutesOf(now)
	if !InRange(cur, openMin, closeMin) {
		return false
	}
	for _, b := range ds.Breaks {
		if inBreak(cur, b) {
			return false
		}
	}
	return true
}

// inBreak reports whether cur falls inside a break window. Break containment
// is start-inclusive and end-exclusive: the store is closed at exactly the
// break start and open again at exactly the break end.
func inBreak(cur int, b schedule.BreakWindow) bool {
	startMin, endMin, ok := parseWindow(b.Start, b.End)
	if !ok {
		return false
	}
	return cur >= startMin && cur < endMin
}

func dayNameFor(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// instantAt builds the concrete timestamp for a boundary: dayOffset calendar
// days after now's date, at the given minutes since midnight, in now's
// location.
func instantAt(now time.Time, dayOffset, minutes int) time.Time {
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return base.AddDate(0, 0, dayOffset).Add(time.Duration(minutes) * time.Minute)
}
