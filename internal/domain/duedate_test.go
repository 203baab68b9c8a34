package domain

import (
	"encoding/json"
	"testing"
)

func TestDueDateJSON_StringShape(t *testing.T) {
	d := NewDueDate("2026-01-12")
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-01-12"` {
		t.Fatalf("expected string shape, got %s", out)
	}

	var back DueDate
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Value != "2026-01-12" || back.Year != 0 {
		t.Fatalf("shape changed on round trip: %+v", back)
	}
}

func TestDueDateJSON_StructuredShape(t *testing.T) {
	d := NewStructuredDueDate(2026, 1, 12)
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"year":2026,"month":1,"day":12}` {
		t.Fatalf("expected structured shape, got %s", out)
	}

	var back DueDate
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Year != 2026 || back.Month != 1 || back.Day != 12 || back.Value != "" {
		t.Fatalf("shape changed on round trip: %+v", back)
	}
}

func TestDueDateTime_BothShapes(t *testing.T) {
	a, aok := NewDueDate("2026-01-12").Time()
	b, bok := NewStructuredDueDate(2026, 1, 12).Time()
	if !aok || !bok {
		t.Fatalf("expected both shapes to parse")
	}
	if !a.Equal(b) {
		t.Fatalf("shapes disagree: %v vs %v", a, b)
	}
	if a.Hour() != 0 || a.Minute() != 0 {
		t.Fatalf("expected local midnight, got %v", a)
	}
}

func TestDueDateTime_Absent(t *testing.T) {
	var d *DueDate
	if _, ok := d.Time(); ok {
		t.Fatalf("nil due date should not parse")
	}
	if _, ok := NewDueDate("next tuesday").Time(); ok {
		t.Fatalf("garbage should not parse")
	}
}

func TestDueDateTime_PartialStructured(t *testing.T) {
	var d DueDate
	if err := json.Unmarshal([]byte(`{"year":2026,"month":0,"day":0}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Year alone is not a date; time.Date would fold month 0 into the
	// previous year.
	if got, ok := d.Time(); ok {
		t.Fatalf("partial structured date parsed to %v", got)
	}

	if _, ok := NewStructuredDueDate(2026, 1, 0).Time(); ok {
		t.Fatalf("missing day should not parse")
	}
}

func TestDueDateJSON_Null(t *testing.T) {
	var d DueDate
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if _, ok := d.Time(); ok {
		t.Fatalf("null due date should carry no date")
	}
}
