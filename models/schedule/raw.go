package schedule

import (
	"encoding/json"
)

// RawPeriod matches one element of the 'periods' array in the period-list
// schedule shape coming from the admin panel.
type RawPeriod struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	NextDay bool   `json:"nextDay,omitempty"`
}

// RawBreak matches one element of the 'breaks' array in the simple
// per-day schedule shape.
type RawBreak struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RawDay is one day of a schedule document as stored. Two incompatible
// shapes coexist in storage: the simple shape (isOpen/openTime/closeTime/breaks)
// and the period-list shape (closed/periods). HasPeriods records which shape
// the document actually carried so the normalizer can branch exactly once.
type RawDay struct {
	// Simple shape fields.
	IsOpen    bool       `json:"isOpen,omitempty"`
	OpenTime  string     `json:"openTime,omitempty"`
	CloseTime string     `json:"closeTime,omitempty"`
	Breaks    []RawBreak `json:"breaks,omitempty"`

	// Period-list shape fields.
	Closed  bool        `json:"closed,omitempty"`
	Periods []RawPeriod `json:"periods,omitempty"`

	// HasPeriods is true when the stored day exposed an array-valued
	// 'periods' field, even an empty one. Not part of the wire format.
	HasPeriods bool `json:"-"`
}

// UnmarshalJSON detects which of the two stored shapes a day uses.
// It never fails: garbage day values decode to the zero RawDay, which
// normalizes to a closed day.
func (d *RawDay) UnmarshalJSON(data []byte) error {
	*d = RawDay{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	if raw, ok := fields["periods"]; ok {
		var periods []RawPeriod
		if err := json.Unmarshal(raw, &periods); err == nil {
			d.HasPeriods = true
			d.Periods = periods
			if rawClosed, ok := fields["closed"]; ok {
				var closed bool
				if err := json.Unmarshal(rawClosed, &closed); err == nil {
					d.Closed = closed
				}
			}
			return nil
		}
	}

	unmarshalField(fields, "isOpen", &d.IsOpen)
	unmarshalField(fields, "openTime", &d.OpenTime)
	unmarshalField(fields, "closeTime", &d.CloseTime)
	unmarshalField(fields, "breaks", &d.Breaks)
	return nil
}

// MarshalJSON writes the day back in the shape it was read in, so that
// round-tripping a stored document does not rewrite its format.
func (d RawDay) MarshalJSON() ([]byte, error) {
	if d.HasPeriods {
		periods := d.Periods
		if periods == nil {
			periods = []RawPeriod{}
		}
		return json.Marshal(struct {
			Closed  bool        `json:"closed"`
			Periods []RawPeriod `json:"periods"`
		}{Closed: d.Closed, Periods: periods})
	}
	return json.Marshal(struct {
		IsOpen    bool       `json:"isOpen"`
		OpenTime  string     `json:"openTime,omitempty"`
		CloseTime string     `json:"closeTime,omitempty"`
		Breaks    []RawBreak `json:"breaks,omitempty"`
	}{IsOpen: d.IsOpen, OpenTime: d.OpenTime, CloseTime: d.CloseTime, Breaks: d.Breaks})
}

func unmarshalField(fields map[string]json.RawMessage, key string, out interface{}) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	// Best effort only: a field of the wrong type is left at its zero value.
	_ = json.Unmarshal(raw, out)
}

// RawWeeklySchedule is the schedule document as persisted: the 7 day keys at
// the top level plus an optional opaque timezone label. Missing day keys are
// legal and normalize to closed days.
type RawWeeklySchedule struct {
	Days     map[string]RawDay
	Timezone string
}

// UnmarshalJSON picks the recognized day keys out of the document and ignores
// everything else, so legacy fields in old documents cannot break decoding.
func (s *RawWeeklySchedule) UnmarshalJSON(data []byte) error {
	*s = RawWeeklySchedule{Days: map[string]RawDay{}}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	for _, day := range DayNames {
		raw, ok := fields[day]
		if !ok {
			continue
		}
		var rd RawDay
		if err := json.Unmarshal(raw, &rd); err == nil {
			s.Days[day] = rd
		}
	}
	unmarshalField(fields, "timezone", &s.Timezone)
	return nil
}

// MarshalJSON writes the document back with day keys at the top level.
func (s RawWeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Days)+1)
	for day, rd := range s.Days {
		out[day] = rd
	}
	if s.Timezone != "" {
		out["timezone"] = s.Timezone
	}
	return json.Marshal(out)
}
