// Package filter narrows a detected artifact list with user-supplied
// include/exclude glob patterns.
package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
)

// PatternError reports a glob pattern that failed to compile. It is fatal to
// the run; no partial filtering is attempted.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern: %q", e.Pattern)
}

// Filter applies include/exclude globs to artifact paths relative to the scan
// root. Exclude always wins; includes act as an allow-list only when present.
//
// A bare pattern (no path separator) is expanded into two globs:
//
//	**/PATTERN      matches the pattern as a leaf path segment
//	**/PATTERN/**   matches the pattern as an ancestor segment
//
// so excluding "my-*" drops every artifact under any directory named my-*.
// Patterns containing a separator are used verbatim.
type Filter struct {
	includes []string
	excludes []string
}

// New builds a Filter from raw pattern strings, validating every pattern up
// front.
func New(includePatterns, excludePatterns []string) (*Filter, error) {
	includes, err := expand(includePatterns)
	if err != nil {
		return nil, err
	}
	excludes, err := expand(excludePatterns)
	if err != nil {
		return nil, err
	}
	return &Filter{includes: includes, excludes: excludes}, nil
}

// expand validates patterns and applies the bare-pattern expansion.
func expand(patterns []string) ([]string, error) {
	var out []string
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, &PatternError{Pattern: pat}
		}
		if strings.Contains(pat, "/") {
			out = append(out, pat)
			continue
		}
		out = append(out, "**/"+pat, "**/"+pat+"/**")
	}
	return out, nil
}

// Matches reports whether a slash-separated relative path survives the
// filter.
func (f *Filter) Matches(relPath string) bool {
	for _, pat := range f.excludes {
		if ok, _ := doublestar.Match(pat, relPath); ok {
			return false
		}
	}
	if len(f.includes) == 0 {
		return true
	}
	for _, pat := range f.includes {
		if ok, _ := doublestar.Match(pat, relPath); ok {
			return true
		}
	}
	return false
}

// Apply filters artifacts by their path relative to root. It never adds
// artifacts, only removes.
func (f *Filter) Apply(root string, artifacts []scan.Artifact) []scan.Artifact {
	kept := artifacts[:0]
	for _, a := range artifacts {
		rel, err := filepath.Rel(root, a.Path)
		if err != nil {
			rel = a.Path
		}
		if f.Matches(filepath.ToSlash(rel)) {
			kept = append(kept, a)
		} else {
			logrus.Debugf("filter: dropped %s", rel)
		}
	}
	return kept
}
