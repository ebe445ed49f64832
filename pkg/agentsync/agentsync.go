// Package agentsync provides the public Go library API for agent-sync.
//
// agent-sync keeps per-agent instruction files (CLAUDE.md, GEMINI.md,
// .cursorrules, ...) linked to one canonical guide file, detects drift, and
// repairs it without discarding content. This package exposes a Client for
// embedding that workflow in other Go programs.
//
// # Basic Usage
//
//	client, err := agentsync.New(agentsync.Options{
//	    ConfigPath: "agent-sync.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inspect every agent binding
//	infos, err := client.Status()
//
//	// Check for drifted mirrors before doing anything destructive
//	conflicts, err := client.Conflicts()
//
//	// Restore the link invariant, merging drifted content
//	result, err := client.Repair()
package agentsync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/GowayLee/agent-sync/internal/agent"
	"github.com/GowayLee/agent-sync/internal/backup"
	"github.com/GowayLee/agent-sync/internal/config"
	"github.com/GowayLee/agent-sync/internal/engine"
	"github.com/GowayLee/agent-sync/internal/linkstate"
	"github.com/GowayLee/agent-sync/internal/mergepolicy"
	"github.com/GowayLee/agent-sync/internal/sandbox"
)

// Options configures an agent-sync Client.
type Options struct {
	// ConfigPath is the path to the config file. If empty, the config is
	// discovered by walking upward from the current directory.
	ConfigPath string

	// BackupDir overrides the default pre-merge backup location. Set to
	// "-" to disable backups entirely.
	BackupDir string

	// Now supplies merge timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Client is the main entry point for the agent-sync library.
type Client struct {
	cfg          *config.Config
	projectRoot  string
	orchestrator *engine.Orchestrator
}

// New creates a Client: it locates and loads the configuration, then wires
// the classifier, merger and operator for the configured link kind.
func New(opts Options) (*Client, error) {
	path := opts.ConfigPath
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	root := filepath.Dir(abs)

	classifier := linkstate.NewClassifier(linkstate.LinkKind(cfg.LinkKind))

	var store *backup.Store
	if opts.BackupDir != "-" {
		dir := opts.BackupDir
		if dir == "" {
			dir = backup.DefaultDir()
		}
		// Backups are best-effort insurance; run without them if the
		// directory cannot be created.
		store, _ = backup.New(dir)
	}

	operator := &engine.Operator{
		Classifier: classifier,
		Merger:     &mergepolicy.Merger{Now: opts.Now},
		Backups:    store,
	}

	return &Client{
		cfg:         cfg,
		projectRoot: root,
		orchestrator: &engine.Orchestrator{
			Operator:   operator,
			Classifier: classifier,
		},
	}, nil
}

// ProjectRoot returns the directory containing the loaded config file.
func (c *Client) ProjectRoot() string {
	return c.projectRoot
}

// Canonical returns the absolute path of the canonical file.
func (c *Client) Canonical() string {
	return filepath.Join(c.projectRoot, c.cfg.Canonical)
}

// LinkKind returns the configured link kind.
func (c *Client) LinkKind() string {
	if c.cfg.LinkKind == "" {
		return config.LinkKindSymlink
	}
	return c.cfg.LinkKind
}

// bindings resolves the configured agents to absolute mirror paths, after
// checking that each path stays inside the project root. The containment
// check resolves symlinks, but engine operations always act on the binding
// path itself, never on what it resolves to.
func (c *Client) bindings() ([]engine.Binding, error) {
	resolved, err := agent.Bindings(c.cfg)
	if err != nil {
		return nil, err
	}

	for i, b := range resolved {
		if _, err := sandbox.ValidatePath(c.projectRoot, b.MirrorPath); err != nil {
			return nil, fmt.Errorf("agent '%s': %w", b.Name, err)
		}
		resolved[i].MirrorPath = filepath.Join(c.projectRoot, b.MirrorPath)
	}
	return resolved, nil
}

// Status classifies every configured binding, in declaration order.
func (c *Client) Status() ([]LinkInfo, error) {
	bindings, err := c.bindings()
	if err != nil {
		return nil, err
	}
	return c.orchestrator.Status(c.Canonical(), bindings), nil
}

// Conflicts runs the pre-flight scan: bindings whose mirrors hold real
// content that a repair would fold into the canonical file.
func (c *Client) Conflicts() ([]Conflict, error) {
	bindings, err := c.bindings()
	if err != nil {
		return nil, err
	}
	return c.orchestrator.ScanConflicts(c.Canonical(), bindings), nil
}

// Link creates links for every configured agent, creating the canonical
// file empty first if it is absent.
func (c *Client) Link() (*SyncResult, error) {
	bindings, err := c.bindings()
	if err != nil {
		return nil, err
	}
	result := c.orchestrator.SyncAll(c.Canonical(), bindings)
	return &result, nil
}

// Repair restores the link invariant for every configured agent, merging
// drifted content into the canonical file. The library does not refuse on
// conflicts — callers wanting the CLI's confirmation behavior run Conflicts
// first.
func (c *Client) Repair() (*SyncResult, error) {
	bindings, err := c.bindings()
	if err != nil {
		return nil, err
	}
	result := c.orchestrator.RepairAll(c.Canonical(), bindings)
	return &result, nil
}

// Unlink removes every configured agent's mirror entry.
func (c *Client) Unlink() (*SyncResult, error) {
	bindings, err := c.bindings()
	if err != nil {
		return nil, err
	}
	result := c.orchestrator.UnlinkAll(bindings)
	return &result, nil
}
