package service

import (
	"testing"

	"student_dashboard/internal/domain"
)

func TestResolve_PreferenceWins(t *testing.T) {
	r := ColorResolver{
		Prefs: map[string]string{"History": "#9333ea"},
		Live:  []domain.Course{{ID: "c_h", Name: "History", Color: "#111111"}},
	}
	if got := r.Resolve("c_h", "History"); got != "#9333ea" {
		t.Fatalf("expected saved preference, got %s", got)
	}
}

func TestResolve_FixtureTable(t *testing.T) {
	r := ColorResolver{}
	if got := r.Resolve("course_math", "Mathematics"); got != "#2563eb" {
		t.Fatalf("expected demo table color, got %s", got)
	}
}

func TestResolve_LiveCourseList(t *testing.T) {
	r := ColorResolver{
		Live: []domain.Course{{ID: "gc_c9", Name: "Physics", Color: "#0ea5e9"}},
	}
	if got := r.Resolve("gc_c9", "Physics"); got != "#0ea5e9" {
		t.Fatalf("expected live course color, got %s", got)
	}
}

func TestResolve_Default(t *testing.T) {
	r := ColorResolver{}
	if got := r.Resolve("unknown", "Unknown"); got != DefaultCourseColor {
		t.Fatalf("expected default, got %s", got)
	}
}

func TestContrastingText(t *testing.T) {
	cases := []struct {
		bg   string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#1f2937", "#ffffff"}, // default course color
		{"#2563eb", "#ffffff"},
		{"#fbbf24", "#000000"}, // amber is light enough for black
		{"15803d", "#ffffff"},  // missing # still parses
	}
	for _, c := range cases {
		if got := ContrastingText(c.bg); got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.bg, c.want, got)
		}
	}
}

func TestContrastingText_MalformedHex(t *testing.T) {
	// Malformed input counts as luminance 0 and gets white text.
	for _, bg := range []string{"", "#fff", "#zzzzzz", "not-a-color"} {
		if got := ContrastingText(bg); got != "#ffffff" {
			t.Fatalf("%q: expected white fallback, got %s", bg, got)
		}
	}
}

func TestContrastingText_ThresholdStability(t *testing.T) {
	// Two mid grays straddling the 0.179 luminance crossover.
	if got := ContrastingText("#777777"); got != "#000000" {
		t.Fatalf("#777777: expected black, got %s", got)
	}
	if got := ContrastingText("#6b6b6b"); got != "#ffffff" {
		t.Fatalf("#6b6b6b: expected white, got %s", got)
	}
}
