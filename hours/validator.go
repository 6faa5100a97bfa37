package hours

import (
	"fmt"
	"sort"

	"sf-server/models/schedule"
)

// Validate checks a schedule document before it is persisted and returns a
// field-level result for the schedule editor. It inspects the raw document,
// not the normalized one: normalization silently degrades broken days to
// closed, which is the right fail-safe at evaluation time but useless as
// editor feedback. It is total and side-effect free.
//
// Errors are problems the normalizer would swallow by closing the day
// (broken time strings). Break inconsistencies the evaluator knowingly
// accepts today, such as overlapping breaks or breaks outside the open
// window, are reported as warnings so editors can see them without being
// blocked. Missing day keys are closed days, never an error.
func Validate(raw schedule.RawWeeklySchedule) schedule.ValidationResult {
	res := schedule.ValidationResult{Valid: true}

	for _, day := range schedule.DayNames {
		rd, ok := raw.Days[day]
		if !ok {
			continue
		}
		if rd.HasPeriods {
			validatePeriodDay(&res, day, rd)
		} else {
			validateSimpleDay(&res, day, rd)
		}
	}
	return res
}

func validateSimpleDay(res *schedule.ValidationResult, day string, rd schedule.RawDay) {
	if !rd.IsOpen {
		if len(rd.Breaks) > 0 {
			res.AddWarning(day, "breaks", "breaks on a closed day are ignored")
		}
		return
	}

	ok := true
	if !IsClockTime(rd.OpenTime) {
		res.AddError(day, "openTime", fmt.Sprintf("invalid time %q, expected HH:MM", rd.OpenTime))
		ok = false
	}
	if !IsClockTime(rd.CloseTime) {
		res.AddError(day, "closeTime", fmt.Sprintf("invalid time %q, expected HH:MM", rd.CloseTime))
		ok = false
	}

	type span struct{ start, end int }
	var spans []span
	for i, b := range rd.Breaks {
		startMin, endMin, valid := parseWindow(b.Start, b.End)
		if !valid {
			res.AddError(day, fmt.Sprintf("breaks[%d]", i),
				fmt.Sprintf("invalid break window %q-%q, expected HH:MM", b.Start, b.End))
			continue
		}
		spans = append(spans, span{start: startMin, end: endMin})
	}
	if !ok {
		return
	}

	openMin, closeMin, _ := parseWindow(rd.OpenTime, rd.CloseTime)
	// Envelope checks are skipped on overnight windows, where break minutes
	// are ambiguous relative to the wrap.
	if closeMin >= openMin {
		for _, s := range spans {
			if s.start < openMin || s.end > closeMin {
				res.AddWarning(day, "breaks", fmt.Sprintf(
					"break falls outside the open window %s-%s", rd.OpenTime, rd.CloseTime))
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			res.AddWarning(day, "breaks", "break windows overlap")
		}
	}
}

func validatePeriodDay(res *schedule.ValidationResult, day string, rd schedule.RawDay) {
	if rd.Closed {
		if len(rd.Periods) > 0 {
			res.AddWarning(day, "periods", "periods on a closed day are ignored")
		}
		return
	}

	for i, p := range rd.Periods {
		if !IsClockTime(p.Open) {
			res.AddError(day, fmt.Sprintf("periods[%d].open", i),
				fmt.Sprintf("invalid time %q, expected HH:MM", p.Open))
		}
		if !IsClockTime(p.Close) {
			res.AddError(day, fmt.Sprintf("periods[%d].close", i),
				fmt.Sprintf("invalid time %q, expected HH:MM", p.Close))
		}
	}

	if len(rd.Periods) > 2 {
		res.AddWarning(day, "periods", fmt.Sprintf(
			"only 2 periods per day are supported, %d will be dropped", len(rd.Periods)-2))
	}
}
