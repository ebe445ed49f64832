package engine

import (
	"strings"

	"github.com/GowayLee/agent-sync/internal/fsprobe"
	"github.com/GowayLee/agent-sync/internal/linkstate"
	"github.com/GowayLee/agent-sync/internal/logging"
)

// Orchestrator drives the Operator across an ordered agent set. One agent's
// failure never prevents attempting the next, and no cross-agent rollback is
// attempted.
type Orchestrator struct {
	Operator   *Operator
	Classifier *linkstate.Classifier
}

// Status classifies every binding and returns the descriptions in input
// order. Read-only.
func (o *Orchestrator) Status(canonicalPath string, bindings []Binding) []linkstate.LinkInfo {
	infos := make([]linkstate.LinkInfo, 0, len(bindings))
	for _, b := range bindings {
		infos = append(infos, o.Classifier.Describe(b.Name, canonicalPath, b.MirrorPath))
	}
	return infos
}

// ScanConflicts is the pre-flight check run before a destructive batch. A
// binding is flagged only when it classifies as not-linked or broken AND the
// mirror still holds non-whitespace content — empty or already-consistent
// mirrors are never reported.
func (o *Orchestrator) ScanConflicts(canonicalPath string, bindings []Binding) []Conflict {
	var conflicts []Conflict
	for _, b := range bindings {
		status := o.Classifier.Classify(canonicalPath, b.MirrorPath)
		if status.Kind != linkstate.KindNotLinked && status.Kind != linkstate.KindBroken {
			continue
		}

		text, err := fsprobe.ReadText(b.MirrorPath)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}

		conflicts = append(conflicts, Conflict{Agent: b.Name, MirrorPath: b.MirrorPath})
	}
	return conflicts
}

// SyncAll creates a link for every binding. The canonical file is created
// empty first if absent; if that creation fails the failure is recorded
// under CanonicalAgent and the per-agent attempts still run — each one then
// fails individually with ErrSourceMissing.
func (o *Orchestrator) SyncAll(canonicalPath string, bindings []Binding) SyncResult {
	logger := logging.GetLogger("engine")
	var result SyncResult

	if !fsprobe.Exists(canonicalPath) {
		if err := fsprobe.WriteText(canonicalPath, ""); err != nil {
			logger.Warn().Err(err).Str("canonical", canonicalPath).Msg("could not create canonical file")
			result.fail(CanonicalAgent, err)
		}
	}

	for _, b := range bindings {
		if err := o.Operator.CreateLink(canonicalPath, b.MirrorPath); err != nil {
			result.fail(b.Name, err)
			continue
		}
		result.ok(b.Name)
	}

	logger.Info().Int("ok", len(result.Successes)).Int("failed", len(result.Failures)).Msg("sync finished")
	return result
}

// RepairAll repairs every binding. The canonical file is not auto-created
// here — its presence is a precondition the caller checks beforehand; absent
// canonicals surface as per-agent ErrSourceMissing failures.
func (o *Orchestrator) RepairAll(canonicalPath string, bindings []Binding) SyncResult {
	logger := logging.GetLogger("engine")
	var result SyncResult

	for _, b := range bindings {
		if err := o.Operator.Repair(canonicalPath, b.MirrorPath); err != nil {
			result.fail(b.Name, err)
			continue
		}
		result.ok(b.Name)
	}

	logger.Info().Int("ok", len(result.Successes)).Int("failed", len(result.Failures)).Msg("repair finished")
	return result
}

// UnlinkAll removes every binding's mirror entry. Absent mirrors are
// reported as failures like any other per-agent error.
func (o *Orchestrator) UnlinkAll(bindings []Binding) SyncResult {
	var result SyncResult
	for _, b := range bindings {
		if err := o.Operator.RemoveLink(b.MirrorPath); err != nil {
			result.fail(b.Name, err)
			continue
		}
		result.ok(b.Name)
	}
	return result
}
