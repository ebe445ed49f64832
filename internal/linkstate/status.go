// Package linkstate decides what relationship currently holds between a
// canonical file and one of its mirror files. Classification is a pure
// read-only function of filesystem state: nothing here ever mutates.
package linkstate

// Kind is the closed set of relationship states between a canonical file and
// a mirror.
type Kind string

const (
	// KindLinked means the mirror is a link resolving to the canonical
	// file, or a regular file byte-identical to it. No drift either way.
	KindLinked Kind = "linked"

	// KindNotLinked means the mirror exists as a regular file whose
	// content differs from the canonical file.
	KindNotLinked Kind = "not-linked"

	// KindMissing means the canonical file or the mirror does not exist.
	KindMissing Kind = "missing"

	// KindBroken means the mirror cannot be confirmed to reference the
	// canonical file: unreadable link, wrong target, or read failure.
	KindBroken Kind = "broken"
)

// LinkStatus is the classification result. ResolvedTarget is populated only
// for KindLinked.
type LinkStatus struct {
	Kind           Kind
	ResolvedTarget string
}

// LinkInfo describes one agent binding together with its current status.
// Produced on demand, never persisted.
type LinkInfo struct {
	AgentName     string
	MirrorPath    string
	CanonicalPath string
	Status        LinkStatus
}

// LinkKind selects which filesystem link primitive the tool maintains.
type LinkKind string

const (
	LinkSymlink  LinkKind = "symlink"
	LinkHardlink LinkKind = "hardlink"
)
