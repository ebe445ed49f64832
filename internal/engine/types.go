package engine

// Binding pairs an agent name with the mirror file that should track the
// canonical file. Bindings arrive as an ordered, immutable input per call;
// the engine never caches them across calls.
type Binding struct {
	Name       string
	MirrorPath string
}

// Failure records one agent's error during a batch run.
type Failure struct {
	Agent   string
	Message string
}

// SyncResult holds the outcome of a batch operation. Both lists preserve the
// input iteration order.
type SyncResult struct {
	Successes []string
	Failures  []Failure
}

// ok appends a success entry.
func (r *SyncResult) ok(agent string) {
	r.Successes = append(r.Successes, agent)
}

// fail appends a failure entry.
func (r *SyncResult) fail(agent string, err error) {
	r.Failures = append(r.Failures, Failure{Agent: agent, Message: err.Error()})
}

// Conflict identifies a binding whose mirror holds real content that a
// destructive batch run would fold into the canonical file.
type Conflict struct {
	Agent      string
	MirrorPath string
}

// CanonicalAgent is the reserved failure key used when the canonical file
// itself cannot be created during a batch sync.
const CanonicalAgent = "(canonical)"
