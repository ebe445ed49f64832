package engine

import "errors"

// Sentinel errors for link operations. Callers match with errors.Is; the
// batch orchestrator downgrades all of them to per-agent failure entries.
var (
	// ErrSourceMissing means the canonical file is absent when an
	// operation requires it.
	ErrSourceMissing = errors.New("canonical file does not exist")

	// ErrDestinationExists means a link creation would overwrite an
	// existing mirror entry. Never auto-overwritten.
	ErrDestinationExists = errors.New("mirror path already exists")

	// ErrNotFound means a removal target is absent.
	ErrNotFound = errors.New("mirror path does not exist")

	// ErrUnreadablePair means both sides of a merge attempt failed to
	// read.
	ErrUnreadablePair = errors.New("neither canonical nor mirror content could be read")
)
