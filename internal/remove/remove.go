// Package remove deletes confirmed artifact directories.
package remove

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/buildmole/internal/pool"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
)

// Failure records one artifact that could not be deleted.
type Failure struct {
	Artifact scan.Artifact
	Err      error
}

// Report summarizes a removal pass.
type Report struct {
	// Deleted is the number of artifact directories fully removed.
	Deleted int
	// FreedBytes is the sum of sizes of the deleted artifacts.
	FreedBytes int64
	// Failures lists artifacts that could not be removed. A failure never
	// aborts sibling deletions.
	Failures []Failure
}

// Remove deletes every artifact directory concurrently on the shared pool.
// Artifact subtrees are disjoint by construction (the scanner prunes nested
// matches), so deletions need no coordination beyond the result slots.
func Remove(p *pool.Pool, artifacts []scan.Artifact) Report {
	errs := make([]error, len(artifacts))
	p.ForEach(len(artifacts), func(i int) {
		logrus.Debugf("remove: deleting %s", artifacts[i].Path)
		if err := os.RemoveAll(artifacts[i].Path); err != nil {
			errs[i] = fmt.Errorf("delete %s: %w", artifacts[i].Path, err)
		}
	})

	var report Report
	for i, err := range errs {
		if err != nil {
			report.Failures = append(report.Failures, Failure{Artifact: artifacts[i], Err: err})
			continue
		}
		report.Deleted++
		report.FreedBytes += artifacts[i].Size
	}
	return report
}
