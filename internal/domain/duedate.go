package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// DueDate is a due date in one of the two shapes the dashboard receives:
// an ISO calendar-date string ("2026-01-12") for custom tasks and fixture
// assignments, or a structured {year, month, day} record as Google Classroom
// sends it. The shape is kept as received; Time() is the single parse rule
// both shapes go through before any comparison.
type DueDate struct {
	// Value holds the string form. Empty when the date is structured.
	Value string
	// Year/Month/Day hold the structured form. Zero when the date is a string.
	Year  int
	Month int
	Day   int
}

type dueDateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDueDate builds the string-shaped variant. Empty input means no date.
func NewDueDate(iso string) *DueDate {
	if iso == "" {
		return nil
	}
	return &DueDate{Value: iso}
}

// NewStructuredDueDate builds the {year, month, day} variant.
func NewStructuredDueDate(year, month, day int) *DueDate {
	return &DueDate{Year: year, Month: month, Day: day}
}

// A structured date needs all three parts; a partial record carries no date,
// it does not normalize into a neighboring month.
func (d *DueDate) structured() bool {
	return d != nil && d.Value == "" && d.Year != 0 && d.Month != 0 && d.Day != 0
}

// Time resolves the due date to a local calendar date. The bool reports
// whether the value actually carried a date.
func (d *DueDate) Time() (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	if d.structured() {
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local), true
	}
	if d.Value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, d.Value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

// String renders the date for display: the raw value for string dates,
// ISO formatting for structured ones.
func (d *DueDate) String() string {
	if d == nil {
		return ""
	}
	if d.structured() {
		t, _ := d.Time()
		return t.Format("2006-01-02")
	}
	return d.Value
}

// MarshalJSON emits the same shape the date arrived in.
func (d *DueDate) MarshalJSON() ([]byte, error) {
	if d.structured() {
		return json.Marshal(dueDateParts{Year: d.Year, Month: d.Month, Day: d.Day})
	}
	if d == nil || d.Value == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// UnmarshalJSON accepts either a string or a {year, month, day} object.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = DueDate{}
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &d.Value)
	}
	var parts dueDateParts
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*d = DueDate{Year: parts.Year, Month: parts.Month, Day: parts.Day}
	return nil
}
