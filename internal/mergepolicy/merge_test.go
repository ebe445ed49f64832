package mergepolicy

import (
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMergeEmptyCanonical(t *testing.T) {
	m := &Merger{}
	if got := m.Merge("", "mirror content"); got != "mirror content" {
		t.Errorf("Merge(\"\", b) = %q, want mirror unchanged", got)
	}
	if got := m.Merge("  \n\t ", "mirror content"); got != "mirror content" {
		t.Errorf("whitespace-only canonical: got %q, want mirror unchanged", got)
	}
}

func TestMergeEmptyMirror(t *testing.T) {
	m := &Merger{}
	if got := m.Merge("canonical content", ""); got != "canonical content" {
		t.Errorf("Merge(a, \"\") = %q, want canonical unchanged", got)
	}
	if got := m.Merge("canonical content", "\n\n"); got != "canonical content" {
		t.Errorf("whitespace-only mirror: got %q, want canonical unchanged", got)
	}
}

func TestMergeKeepsBothSides(t *testing.T) {
	m := &Merger{Now: fixedClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))}

	got := m.Merge("hello\n", "custom notes\n")

	if !strings.Contains(got, "hello") {
		t.Errorf("merged output lost canonical content: %q", got)
	}
	if !strings.Contains(got, "custom notes") {
		t.Errorf("merged output lost mirror content: %q", got)
	}
	if strings.Index(got, "hello") > strings.Index(got, "custom notes") {
		t.Errorf("canonical content must come first: %q", got)
	}
}

func TestMergeStampsTimestamp(t *testing.T) {
	stamp := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	m := &Merger{Now: fixedClock(stamp)}

	got := m.Merge("a", "b")
	if !strings.Contains(got, "2026-08-29T12:00:00Z") {
		t.Errorf("merged output missing timestamp: %q", got)
	}
	if !strings.Contains(got, sectionClose) {
		t.Errorf("merged output missing closing delimiter: %q", got)
	}
}

func TestSuccessiveMergesStayDistinguishable(t *testing.T) {
	first := &Merger{Now: fixedClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))}
	second := &Merger{Now: fixedClock(time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC))}

	once := first.Merge("guide", "drift one")
	twice := second.Merge(once, "drift two")

	// Both sections survive, each with its own timestamp.
	for _, want := range []string{"guide", "drift one", "drift two", "2026-08-29T12:00:00Z", "2026-08-30T09:30:00Z"} {
		if !strings.Contains(twice, want) {
			t.Errorf("second merge lost %q: %q", want, twice)
		}
	}
}

func TestMergeDefaultsToWallClock(t *testing.T) {
	m := &Merger{}
	got := m.Merge("a", "b")
	if !strings.Contains(got, sectionOpen) {
		t.Errorf("merged output missing section header: %q", got)
	}
}
