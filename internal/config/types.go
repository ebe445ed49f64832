package config

// Config represents the agent-sync.toml (or .yaml) configuration file.
type Config struct {
	Version   int     `toml:"version" yaml:"version"`
	Canonical string  `toml:"canonical" yaml:"canonical"`
	LinkKind  string  `toml:"link_kind,omitempty" yaml:"link_kind,omitempty"`
	Agents    []Agent `toml:"agents" yaml:"agents"`
}

// Agent declares one per-agent mirror file. Order matters: batch operations
// iterate agents in declaration order, and a later duplicate name overrides
// an earlier one at load time — the engine never sees duplicates.
type Agent struct {
	Name string `toml:"name" yaml:"name"`

	// Path is the mirror file path relative to the project root. Empty
	// means use the built-in default for a well-known agent name.
	Path string `toml:"path,omitempty" yaml:"path,omitempty"`
}

// Link kinds accepted in the link_kind field. Empty defaults to symlink.
const (
	LinkKindSymlink  = "symlink"
	LinkKindHardlink = "hardlink"
)
