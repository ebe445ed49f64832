// Package mergepolicy combines drifted canonical and mirror content into one
// body without discarding either side's bytes. The policy is lossy-averse,
// not semantic: conflicts accumulate as delimited sections for a human to
// sort out later.
package mergepolicy

import (
	"strings"
	"time"
)

const (
	sectionOpen  = "<<<<<<< merged from mirror at "
	sectionClose = "<<<<<<< end merged section >>>>>>>"
)

// Merger merges two text bodies. Now supplies the wall-clock time stamped
// into the merged section header; it defaults to time.Now so tests can pin
// the clock.
type Merger struct {
	Now func() time.Time
}

// Merge combines canonical and mirror content:
//   - a whitespace-only canonical yields the mirror unchanged
//   - a whitespace-only mirror yields the canonical unchanged
//   - otherwise the canonical content is followed by a timestamped,
//     delimited section holding the mirror content
//
// The timestamp is never omitted, so repeated unresolved conflicts stay
// visually distinguishable instead of silently overwriting each other.
func (m *Merger) Merge(canonical, mirror string) string {
	if strings.TrimSpace(canonical) == "" {
		return mirror
	}
	if strings.TrimSpace(mirror) == "" {
		return canonical
	}

	now := m.Now
	if now == nil {
		now = time.Now
	}
	stamp := now().UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(canonical)
	if !strings.HasSuffix(canonical, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(sectionOpen)
	b.WriteString(stamp)
	b.WriteString(" >>>>>>>\n")
	b.WriteString(mirror)
	if !strings.HasSuffix(mirror, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(sectionClose)
	b.WriteString("\n")
	return b.String()
}
