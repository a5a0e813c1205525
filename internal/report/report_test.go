package report

import (
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
)

func artifact(system, path string, size int64) scan.Artifact {
	return scan.Artifact{Path: path, BuildSystem: system, Size: size}
}

func TestSummaryEmpty(t *testing.T) {
	var b strings.Builder
	Summary(&b, nil, false, false)
	if !strings.Contains(b.String(), "No build artifacts found.") {
		t.Errorf("output = %q", b.String())
	}
}

func TestSummaryGroupsAndTotals(t *testing.T) {
	artifacts := []scan.Artifact{
		artifact("Node.js", "/a/node_modules", 1<<20),
		artifact("Node.js", "/b/node_modules", 2<<20),
		artifact("Rust/Cargo", "/c/target", 512<<10),
	}

	var b strings.Builder
	Summary(&b, artifacts, false, false)
	out := b.String()

	for _, want := range []string{"Node.js", "Rust/Cargo", "3.0 MB", "Total", "3.5 MB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/a/node_modules") {
		t.Error("paths shown without verbose")
	}
}

func TestSummaryVerboseListsPaths(t *testing.T) {
	artifacts := []scan.Artifact{artifact("Rust/Cargo", "/projects/foo/target", 1024)}

	var b strings.Builder
	Summary(&b, artifacts, true, false)
	if !strings.Contains(b.String(), "/projects/foo/target") {
		t.Errorf("verbose output missing path:\n%s", b.String())
	}
}

func TestSummaryGroupOrderIsSorted(t *testing.T) {
	artifacts := []scan.Artifact{
		artifact("Zig", "/z/zig-out", 1),
		artifact("Node.js", "/n/node_modules", 1),
	}

	var b strings.Builder
	Summary(&b, artifacts, false, false)
	out := b.String()
	if strings.Index(out, "Node.js") > strings.Index(out, "Zig") {
		t.Errorf("groups not sorted:\n%s", out)
	}
}

func TestDryRunFooter(t *testing.T) {
	var b strings.Builder
	DryRunFooter(&b)
	if !strings.Contains(b.String(), "bm clean") {
		t.Errorf("footer = %q", b.String())
	}
}

func TestDiskLine(t *testing.T) {
	line, err := DiskLine(t.TempDir())
	if err != nil {
		t.Skipf("disk usage unavailable: %v", err)
	}
	if !strings.Contains(line, "free of") {
		t.Errorf("line = %q", line)
	}
}
