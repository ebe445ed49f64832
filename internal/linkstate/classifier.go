package linkstate

import (
	"path/filepath"

	"github.com/GowayLee/agent-sync/internal/fsprobe"
)

// Classifier classifies mirror files against a canonical file under a fixed
// link kind.
type Classifier struct {
	Kind LinkKind
}

// NewClassifier creates a Classifier. An empty kind defaults to symlink.
func NewClassifier(kind LinkKind) *Classifier {
	if kind == "" {
		kind = LinkSymlink
	}
	return &Classifier{Kind: kind}
}

// Classify determines the current relationship between the canonical file
// and the mirror. It is idempotent with respect to an unchanged filesystem
// and performs no writes.
func (c *Classifier) Classify(canonicalPath, mirrorPath string) LinkStatus {
	if !fsprobe.Exists(canonicalPath) {
		return LinkStatus{Kind: KindMissing}
	}
	if !fsprobe.Exists(mirrorPath) {
		return LinkStatus{Kind: KindMissing}
	}

	if fsprobe.IsLink(mirrorPath) {
		if c.Kind == LinkHardlink {
			// A symlink is never a valid mirror in hardlink mode.
			return LinkStatus{Kind: KindBroken}
		}
		return c.classifySymlink(canonicalPath, mirrorPath)
	}

	if c.Kind == LinkHardlink {
		same, err := fsprobe.SameInode(canonicalPath, mirrorPath)
		if err == nil && same {
			return LinkStatus{Kind: KindLinked, ResolvedTarget: fsprobe.Canonicalize(canonicalPath)}
		}
		// Distinct inodes fall through to the content comparison: a
		// byte-identical copy still counts as linked for status purposes.
	}

	return c.classifyRegular(canonicalPath, mirrorPath)
}

// classifySymlink compares a symlink mirror's resolved target against the
// canonical path. Relative targets are resolved against the directory
// containing the link, never the process working directory.
func (c *Classifier) classifySymlink(canonicalPath, mirrorPath string) LinkStatus {
	target, err := fsprobe.ReadLinkTarget(mirrorPath)
	if err != nil {
		return LinkStatus{Kind: KindBroken}
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(mirrorPath), target)
	}

	resolved := fsprobe.Canonicalize(target)
	want := fsprobe.Canonicalize(canonicalPath)
	if resolved == want {
		return LinkStatus{Kind: KindLinked, ResolvedTarget: resolved}
	}
	return LinkStatus{Kind: KindBroken}
}

// classifyRegular compares a regular-file mirror's content against the
// canonical file.
func (c *Classifier) classifyRegular(canonicalPath, mirrorPath string) LinkStatus {
	canonicalText, cErr := fsprobe.ReadText(canonicalPath)
	mirrorText, mErr := fsprobe.ReadText(mirrorPath)
	if cErr != nil || mErr != nil {
		return LinkStatus{Kind: KindBroken}
	}

	if canonicalText == mirrorText {
		return LinkStatus{Kind: KindLinked, ResolvedTarget: fsprobe.Canonicalize(canonicalPath)}
	}
	return LinkStatus{Kind: KindNotLinked}
}

// Describe classifies one agent binding and packages the result.
func (c *Classifier) Describe(agentName, canonicalPath, mirrorPath string) LinkInfo {
	return LinkInfo{
		AgentName:     agentName,
		MirrorPath:    mirrorPath,
		CanonicalPath: canonicalPath,
		Status:        c.Classify(canonicalPath, mirrorPath),
	}
}
