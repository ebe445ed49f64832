package agentsync

import (
	"github.com/GowayLee/agent-sync/internal/engine"
	"github.com/GowayLee/agent-sync/internal/linkstate"
)

// Type aliases re-export internal result types as the public API. Users
// import "github.com/GowayLee/agent-sync/pkg/agentsync" and use
// agentsync.SyncResult, agentsync.LinkInfo, etc.

type Binding = engine.Binding
type Failure = engine.Failure
type SyncResult = engine.SyncResult
type Conflict = engine.Conflict
type LinkInfo = linkstate.LinkInfo
type LinkStatus = linkstate.LinkStatus
type Kind = linkstate.Kind

const (
	KindLinked    = linkstate.KindLinked
	KindNotLinked = linkstate.KindNotLinked
	KindMissing   = linkstate.KindMissing
	KindBroken    = linkstate.KindBroken
)
