// Package engine performs the filesystem mutations that keep mirror files
// linked to the canonical file: single-binding link operations plus the
// batch orchestration across a configured agent set.
//
// Everything here is single-threaded and synchronous. Each per-file action
// is only as atomic as the underlying syscall; a repair spans several
// independent syscalls and is deliberately not atomic as a whole.
package engine

import (
	"fmt"
	"os"

	"github.com/GowayLee/agent-sync/internal/backup"
	"github.com/GowayLee/agent-sync/internal/fsprobe"
	"github.com/GowayLee/agent-sync/internal/linkstate"
	"github.com/GowayLee/agent-sync/internal/logging"
	"github.com/GowayLee/agent-sync/internal/mergepolicy"
)

// Operator performs create/remove/repair mutations for one mirror file.
type Operator struct {
	Classifier *linkstate.Classifier
	Merger     *mergepolicy.Merger

	// Backups, when set, stashes the canonical file's previous bytes
	// before a merge overwrites them. Best effort: stash failures never
	// fail the repair.
	Backups *backup.Store
}

// CreateLink creates a link at mirrorPath pointing at canonicalPath. It
// fails with ErrSourceMissing if the canonical file is absent and with
// ErrDestinationExists if anything already occupies mirrorPath — existing
// entries are never silently overwritten.
func (o *Operator) CreateLink(canonicalPath, mirrorPath string) error {
	if !fsprobe.Exists(canonicalPath) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, canonicalPath)
	}
	if fsprobe.Exists(mirrorPath) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, mirrorPath)
	}

	var err error
	if o.Classifier.Kind == linkstate.LinkHardlink {
		err = os.Link(canonicalPath, mirrorPath)
	} else {
		err = os.Symlink(canonicalPath, mirrorPath)
	}
	if err != nil {
		return fmt.Errorf("creating %s link %s: %w", o.Classifier.Kind, mirrorPath, err)
	}

	logger := logging.GetLogger("engine")
	logger.Debug().Str("mirror", mirrorPath).Str("canonical", canonicalPath).Msg("link created")
	return nil
}

// RemoveLink unlinks the entry at mirrorPath, whatever it is. Callers that
// care whether it is actually a link must classify first.
func (o *Operator) RemoveLink(mirrorPath string) error {
	if !fsprobe.Exists(mirrorPath) {
		return fmt.Errorf("%w: %s", ErrNotFound, mirrorPath)
	}
	if err := os.Remove(mirrorPath); err != nil {
		return fmt.Errorf("removing %s: %w", mirrorPath, err)
	}
	return nil
}

// Repair restores the link invariant for one binding:
//
//	linked      -> no-op
//	missing     -> create the link (mirror absent; canonical checked below)
//	not-linked,
//	broken      -> merge both contents into the canonical file, remove the
//	               mirror entry, recreate the link
//
// If any step of a merge repair fails, that step's error surfaces and
// nothing is rolled back: the canonical file may already hold merged content
// even though the link was not recreated. That window is accepted rather
// than hidden.
func (o *Operator) Repair(canonicalPath, mirrorPath string) error {
	if !fsprobe.Exists(canonicalPath) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, canonicalPath)
	}

	logger := logging.GetLogger("engine")
	status := o.Classifier.Classify(canonicalPath, mirrorPath)
	logger.Debug().Str("mirror", mirrorPath).Str("state", string(status.Kind)).Msg("classified")

	switch status.Kind {
	case linkstate.KindLinked:
		return nil
	case linkstate.KindMissing:
		// Canonical is present, so only the mirror can be missing.
		return o.CreateLink(canonicalPath, mirrorPath)
	}

	// Drifted or broken: fold both sides into the canonical file first.
	canonicalText, cErr := fsprobe.ReadText(canonicalPath)
	mirrorText, mErr := fsprobe.ReadText(mirrorPath)
	if cErr != nil && mErr != nil {
		return fmt.Errorf("%w: %s", ErrUnreadablePair, mirrorPath)
	}

	merged := o.Merger.Merge(canonicalText, mirrorText)

	if o.Backups != nil && cErr == nil && merged != canonicalText {
		if hash, err := o.Backups.Stash(canonicalText); err == nil {
			logger.Debug().Str("hash", hash).Msg("stashed canonical content before merge")
		}
	}

	if err := fsprobe.WriteText(canonicalPath, merged); err != nil {
		return err
	}
	if err := o.RemoveLink(mirrorPath); err != nil {
		return err
	}
	return o.CreateLink(canonicalPath, mirrorPath)
}
