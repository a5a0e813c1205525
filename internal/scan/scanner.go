// Package scan walks a project tree and detects build-artifact directories
// using the rule catalog.
package scan

import (
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/buildmole/internal/rules"
)

// Artifact is one confirmed build-output directory.
type Artifact struct {
	// Path is the absolute path of the artifact directory.
	Path string
	// BuildSystem is the catalog label of the matching rule.
	BuildSystem string
	// Dir is the rule's directory-name variant, for display.
	Dir string
	// Size is the total byte size of the subtree. Zero until the size pass
	// runs.
	Size int64
}

// skipDirs are version-control metadata directories never descended into,
// independent of the rule catalog.
var skipDirs = map[string]bool{
	".git": true,
	".svn": true,
	".hg":  true,
}

// Scan walks the tree rooted at root and returns every confirmed artifact in
// walk order. The walk is single-threaded, never follows symlinks, and never
// descends into a matched artifact, so no reported path is ever nested inside
// another. Unreadable entries are skipped; the scan reports a best-effort
// result and never fails wholesale.
func Scan(root string) []Artifact {
	var artifacts []Artifact

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.Debugf("scan: skipping %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if skipDirs[name] {
			return fs.SkipDir
		}
		if path == root {
			// The root's parent is outside the scanned tree; never classify
			// the root itself.
			return nil
		}

		m, ok := rules.Resolve(name, filepath.Dir(path))
		if !ok {
			return nil
		}

		artifacts = append(artifacts, Artifact{
			Path:        path,
			BuildSystem: m.BuildSystem,
			Dir:         m.Dir,
		})
		// Claim the subtree: siblings keep scanning, but nothing beneath a
		// confirmed artifact is visited or re-classified.
		return fs.SkipDir
	})
	if err != nil {
		// WalkDir only returns an error our callback produced; with a
		// callback that never fails this is unreachable, but log anyway.
		logrus.Debugf("scan: walk ended early: %v", err)
	}

	return artifacts
}

// TotalSize sums the size fields of all artifacts.
func TotalSize(artifacts []Artifact) int64 {
	var total int64
	for _, a := range artifacts {
		total += a.Size
	}
	return total
}
