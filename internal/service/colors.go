package service

import (
	"math"
	"strconv"
	"strings"

	"student_dashboard/internal/classroom"
	"student_dashboard/internal/domain"
)

// DefaultCourseColor is the dark gray used when nothing else resolves;
// picked for high contrast with white text.
const DefaultCourseColor = "#1f2937"

// ColorResolver assigns a deterministic display color per course for one
// owner: saved preference first, then the demo course table, then the live
// course list, then the default.
type ColorResolver struct {
	// Prefs maps course name → color, from the owner's saved preferences.
	Prefs map[string]string
	// Live is the course list of the current request's source.
	Live []domain.Course
}

func (r ColorResolver) Resolve(courseID, courseName string) string {
	if color, ok := r.Prefs[courseName]; ok {
		return color
	}
	if color, ok := classroom.FixtureCourseColor(courseID); ok {
		return color
	}
	for _, c := range r.Live {
		if c.ID == courseID && c.Color != "" {
			return c.Color
		}
	}
	return DefaultCourseColor
}

// ContrastingText picks black or white text for the given background color,
// whichever clears WCAG AA 4.5:1 against it. The 0.179 relative-luminance
// threshold is where the two foregrounds cross over. Malformed hex counts as
// luminance 0, selecting white.
func ContrastingText(bgHex string) string {
	if relativeLuminance(bgHex) >= 0.179 {
		return "#000000"
	}
	return "#ffffff"
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return 0
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize applies the standard piecewise sRGB gamma expansion to one
// channel value in [0, 1].
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func parseHexColor(hex string) (r, g, b float64, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	channels := [3]float64{}
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = float64(n) / 255
	}
	return channels[0], channels[1], channels[2], true
}
