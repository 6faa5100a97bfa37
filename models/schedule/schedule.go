package schedule

// DayNames lists the 7 logical day keys in calendar order, starting on
// monday to match the stored document format.
var DayNames = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// BreakWindow is a sub-interval of an open day during which the store is
// treated as closed (lunch break, shift change).
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule is the canonical form of one day after normalization: at most
// one primary open window plus its breaks. A closed day carries no times and
// no breaks.
type DaySchedule struct {
	IsOpen          bool          `json:"isOpen"`
	Open            string        `json:"openTime,omitempty"`
	Close           string        `json:"closeTime,omitempty"`
	CrossesMidnight bool          `json:"crossesMidnight,omitempty"`
	Breaks          []BreakWindow `json:"breaks,omitempty"`

	// DroppedPeriods counts periods beyond the second that the period-list
	// shape carried but the canonical form cannot represent.
	DroppedPeriods int `json:"droppedPeriods,omitempty"`
}

// WeeklySchedule is the single canonical representation every component of
// the hours engine operates on. All 7 day keys are always present after
// normalization.
type WeeklySchedule struct {
	Days     map[string]DaySchedule `json:"days"`
	Timezone string                 `json:"timezone,omitempty"`
}

// Day returns the schedule for a day key, falling back to a closed day for
// anything missing or unknown.
func (ws WeeklySchedule) Day(name string) DaySchedule {
	if ds, ok := ws.Days[name]; ok {
		return ds
	}
	return DaySchedule{}
}
