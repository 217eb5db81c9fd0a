package directory

import (
	"bytes"
	"encoding/json"
)

// DayHours is one day of a resource's weekly schedule. A closed day
// serializes as {"closed":true}; an open day carries verbatim "HH:MM"
// strings, which are never validated for format or ordering.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// WeekHours is a full seven-day schedule. Fixed struct fields keep the
// JSON key order Sun..Sat stable across writes.
type WeekHours struct {
	Sun DayHours `json:"Sun"`
	Mon DayHours `json:"Mon"`
	Tue DayHours `json:"Tue"`
	Wed DayHours `json:"Wed"`
	Thu DayHours `json:"Thu"`
	Fri DayHours `json:"Fri"`
	Sat DayHours `json:"Sat"`
}

// NormalizeHours coerces arbitrary client JSON into a complete weekly
// schedule. Days that are missing, null, or not an object are forced
// closed; a day present as an object passes through with open/close
// defaulted to "00:00".
func NormalizeHours(raw json.RawMessage) WeekHours {
	var days map[string]json.RawMessage
	if len(raw) > 0 {
		// Non-object input leaves days nil, closing the whole week.
		_ = json.Unmarshal(raw, &days)
	}
	return WeekHours{
		Sun: normalizeDay(days["Sun"]),
		Mon: normalizeDay(days["Mon"]),
		Tue: normalizeDay(days["Tue"]),
		Wed: normalizeDay(days["Wed"]),
		Thu: normalizeDay(days["Thu"]),
		Fri: normalizeDay(days["Fri"]),
		Sat: normalizeDay(days["Sat"]),
	}
}

var jsonNull = []byte("null")

func normalizeDay(raw json.RawMessage) DayHours {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return DayHours{Closed: true}
	}

	var in struct {
		Open   *string `json:"open"`
		Close  *string `json:"close"`
		Closed bool    `json:"closed"`
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return DayHours{Closed: true}
	}

	out := DayHours{Open: "00:00", Close: "00:00", Closed: in.Closed}
	if in.Open != nil && *in.Open != "" {
		out.Open = *in.Open
	}
	if in.Close != nil && *in.Close != "" {
		out.Close = *in.Close
	}
	return out
}
