// Package rules holds the catalog of build-artifact directory rules and the
// marker resolver that confirms a candidate directory really is build output.
package rules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ─── Match variants ──────────────────────────────────────────────────────────

// DirMatchKind selects how a rule's directory name is compared.
type DirMatchKind int

const (
	// MatchExact requires the candidate name to equal the rule's name.
	MatchExact DirMatchKind = iota
	// MatchSuffix requires the candidate name to end with the rule's suffix
	// (e.g. `*.egg-info`).
	MatchSuffix
)

// MarkerKind selects how a rule's confirmation marker is checked.
type MarkerKind int

const (
	// MarkerFiles confirms when any one of a set of exact filenames exists
	// in the reference directory.
	MarkerFiles MarkerKind = iota
	// MarkerSuffix confirms when any file in the reference directory ends
	// with a suffix (e.g. `.csproj`).
	MarkerSuffix
	// MarkerAlways confirms unconditionally (e.g. `__pycache__`).
	MarkerAlways
)

// Scope selects which directory the marker is checked against.
type Scope int

const (
	// ScopeParent checks the candidate's immediate parent. The common case.
	ScopeParent Scope = iota
	// ScopeGrandparent checks two levels up. Used for vendoring conventions
	// where the candidate sits inside a fixed intermediate directory
	// (vendor/bundle); the rule's ParentName must match the parent exactly.
	ScopeGrandparent
)

// ─── Rule ────────────────────────────────────────────────────────────────────

// Rule describes one artifact directory and how to confirm it.
// The catalog is immutable; rules are never modified at runtime.
type Rule struct {
	// BuildSystem is the human-facing label, e.g. "Rust/Cargo".
	BuildSystem string

	// Dir is the directory name or suffix this rule targets, as displayed.
	Dir string

	MatchKind DirMatchKind

	MarkerKind MarkerKind
	// MarkerFiles holds exact filenames for MarkerFiles rules.
	MarkerFiles []string
	// MarkerSuffix holds the filename suffix for MarkerSuffix rules.
	MarkerSuffix string

	Scope Scope
	// ParentName is the required parent directory name for ScopeGrandparent.
	ParentName string
}

// Match is a confirmed rule hit for a specific directory.
type Match struct {
	BuildSystem string
	// Dir is the rule's directory-name variant, for display.
	Dir string
}

// ─── Catalog ─────────────────────────────────────────────────────────────────

// fileRule builds an exact-name rule confirmed by marker files in the parent.
func fileRule(system, dir string, markers ...string) Rule {
	return Rule{
		BuildSystem: system,
		Dir:         dir,
		MatchKind:   MatchExact,
		MarkerKind:  MarkerFiles,
		MarkerFiles: markers,
	}
}

// suffixMarkerRule builds an exact-name rule confirmed by any parent file
// ending with suffix.
func suffixMarkerRule(system, dir, suffix string) Rule {
	return Rule{
		BuildSystem:  system,
		Dir:          dir,
		MatchKind:    MatchExact,
		MarkerKind:   MarkerSuffix,
		MarkerSuffix: suffix,
	}
}

// alwaysRule builds an exact-name rule that needs no confirmation.
func alwaysRule(system, dir string) Rule {
	return Rule{
		BuildSystem: system,
		Dir:         dir,
		MatchKind:   MatchExact,
		MarkerKind:  MarkerAlways,
	}
}

var pythonMarkers = []string{"pyproject.toml", "setup.py", "requirements.txt"}

// catalog is evaluated top to bottom; the first rule whose name and marker
// both hold wins. Marker-bearing rules for ambiguous names (target, build)
// come before catch-alls so a generic name is not swallowed by the wrong
// build system.
var catalog = []Rule{
	fileRule("Java/Maven", "target", "pom.xml"),
	fileRule("Rust/Cargo", "target", "Cargo.toml"),
	fileRule("Scala/SBT", "target", "build.sbt"),

	fileRule("Node.js", "node_modules", "package.json"),
	fileRule("Node.js", ".next", "package.json"),
	fileRule("Node.js", ".nuxt", "package.json"),
	fileRule("Node.js", ".output", "package.json"),

	fileRule("Swift/SPM", ".build", "Package.swift"),

	alwaysRule("Python", "__pycache__"),
	alwaysRule("Python", ".mypy_cache"),
	alwaysRule("Python", ".pytest_cache"),
	fileRule("Python", ".venv", pythonMarkers...),
	fileRule("Python", "venv", pythonMarkers...),
	fileRule("Python", ".tox", pythonMarkers...),
	{
		BuildSystem: "Python",
		Dir:         "*.egg-info",
		MatchKind:   MatchSuffix,
		MarkerKind:  MarkerFiles,
		MarkerFiles: pythonMarkers,
	},

	fileRule("Android/Gradle", "build", "build.gradle", "build.gradle.kts"),
	fileRule("Android/Gradle", ".gradle", "build.gradle", "build.gradle.kts"),

	fileRule("C/C++/CMake", "build", "CMakeLists.txt"),
	fileRule("C/C++/CMake", "CMakeFiles", "CMakeLists.txt"),

	suffixMarkerRule(".NET/C#", "bin", ".csproj"),
	suffixMarkerRule(".NET/C#", "obj", ".csproj"),
	suffixMarkerRule(".NET/C#", "bin", ".sln"),
	suffixMarkerRule(".NET/C#", "obj", ".sln"),

	fileRule("Elixir/Mix", "_build", "mix.exs"),
	fileRule("Elixir/Mix", "deps", "mix.exs"),

	fileRule("Haskell/Stack", ".stack-work", "stack.yaml"),
	suffixMarkerRule("Haskell/Cabal", "dist-newstyle", ".cabal"),

	fileRule("Dart/Flutter", ".dart_tool", "pubspec.yaml"),
	fileRule("Dart/Flutter", "build", "pubspec.yaml"),

	fileRule("Zig", "zig-out", "build.zig"),
	fileRule("Zig", "zig-cache", "build.zig"),

	fileRule("PHP/Composer", "vendor", "composer.json"),
	fileRule("CocoaPods", "Pods", "Podfile"),

	// Bundler installs under vendor/bundle; the Gemfile lives beside vendor,
	// two levels above the artifact.
	{
		BuildSystem: "Ruby/Bundler",
		Dir:         "bundle",
		MatchKind:   MatchExact,
		MarkerKind:  MarkerFiles,
		MarkerFiles: []string{"Gemfile"},
		Scope:       ScopeGrandparent,
		ParentName:  "vendor",
	},
}

// Catalog returns the ordered rule set. Callers must not mutate it.
func Catalog() []Rule {
	return catalog
}

// ─── Resolver ────────────────────────────────────────────────────────────────

// Resolve checks a candidate directory name against the catalog in order and
// returns the first rule whose marker condition holds. parentDir is the
// candidate's parent directory path.
func Resolve(dirName, parentDir string) (Match, bool) {
	for i := range catalog {
		r := &catalog[i]
		if !r.matchesName(dirName) {
			continue
		}

		markerDir := parentDir
		if r.Scope == ScopeGrandparent {
			if filepath.Base(parentDir) != r.ParentName {
				continue
			}
			markerDir = filepath.Dir(parentDir)
		}

		if r.hasMarker(markerDir) {
			return Match{BuildSystem: r.BuildSystem, Dir: r.Dir}, true
		}
	}
	return Match{}, false
}

func (r *Rule) matchesName(name string) bool {
	switch r.MatchKind {
	case MatchSuffix:
		return strings.HasSuffix(name, strings.TrimPrefix(r.Dir, "*"))
	default:
		return name == r.Dir
	}
}

// hasMarker reports whether the rule's confirmation condition holds in dir.
// An unreadable dir counts as "no marker", not an error.
func (r *Rule) hasMarker(dir string) bool {
	switch r.MarkerKind {
	case MarkerAlways:
		return true

	case MarkerFiles:
		for _, name := range r.MarkerFiles {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return true
			}
		}
		return false

	case MarkerSuffix:
		entries, err := os.ReadDir(dir)
		if err != nil {
			logrus.Warnf("cannot read directory %s: %v", dir, err)
			return false
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), r.MarkerSuffix) {
				return true
			}
		}
		return false
	}
	return false
}
