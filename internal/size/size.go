// Package size computes on-disk sizes for detected artifacts.
package size

import (
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/buildmole/internal/pool"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
)

// Compute fills in the size of every artifact, fanning out one task per
// artifact on the shared pool and blocking until all finish. Each task owns
// exactly one artifact slot, so no locking is needed.
func Compute(p *pool.Pool, artifacts []scan.Artifact) {
	p.ForEach(len(artifacts), func(i int) {
		artifacts[i].Size = dirSize(artifacts[i].Path)
		logrus.Debugf("size: %s = %d bytes", artifacts[i].Path, artifacts[i].Size)
	})
}

// dirSize sums the apparent byte length of every regular file under path.
// Symlinks are not followed and unreadable entries contribute zero.
//
// The walk is strictly serial. Compute already parallelizes across artifacts
// on the shared bounded pool; spawning nested workers on that same pool
// starves the inner walk once the pool saturates and silently under-counts.
func dirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.Debugf("size: skipping %s: %v", p, err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
