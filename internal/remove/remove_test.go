package remove

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lakshaymaurya-felt/buildmole/internal/pool"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
)

func makeArtifact(t *testing.T, root, name string) scan.Artifact {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "file"), []byte("test data"), 0o644); err != nil {
		t.Fatal(err)
	}
	return scan.Artifact{Path: dir, BuildSystem: "Test", Dir: name, Size: 9}
}

func TestRemoveDeletesAll(t *testing.T) {
	root := t.TempDir()
	artifacts := []scan.Artifact{
		makeArtifact(t, root, "target"),
		makeArtifact(t, root, "build"),
		makeArtifact(t, root, "node_modules"),
	}

	report := Remove(pool.New(2), artifacts)

	if report.Deleted != 3 {
		t.Errorf("Deleted = %d, want 3", report.Deleted)
	}
	if report.FreedBytes != 27 {
		t.Errorf("FreedBytes = %d, want 27", report.FreedBytes)
	}
	if len(report.Failures) != 0 {
		t.Errorf("Failures = %+v, want none", report.Failures)
	}
	for _, a := range artifacts {
		if _, err := os.Stat(a.Path); !os.IsNotExist(err) {
			t.Errorf("%s still exists", a.Path)
		}
	}
}

func TestRemoveMissingDirIsNotAFailure(t *testing.T) {
	// RemoveAll on a nonexistent path succeeds; a racing delete elsewhere
	// should not surface as an error.
	a := scan.Artifact{Path: filepath.Join(t.TempDir(), "gone"), Size: 5}
	report := Remove(pool.New(1), []scan.Artifact{a})

	if report.Deleted != 1 || len(report.Failures) != 0 {
		t.Errorf("report = %+v, want one clean deletion", report)
	}
}

func TestRemoveFailureDoesNotAbortSiblings(t *testing.T) {
	root := t.TempDir()
	good := makeArtifact(t, root, "target")

	// An artifact becomes undeletable when its parent loses the write bit.
	parent := filepath.Join(root, "ro")
	if err := os.MkdirAll(parent, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := makeArtifact(t, parent, "obj")
	if err := os.Chmod(parent, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })
	if os.Getuid() == 0 {
		t.Skip("running as root; permission failures are not enforced")
	}

	report := Remove(pool.New(2), []scan.Artifact{good, bad})

	if report.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", report.Deleted)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("Failures = %+v, want exactly one", report.Failures)
	}
	if report.Failures[0].Artifact.Path != bad.Path {
		t.Errorf("failed path = %s, want %s", report.Failures[0].Artifact.Path, bad.Path)
	}
	if _, err := os.Stat(good.Path); !os.IsNotExist(err) {
		t.Errorf("sibling %s was not deleted", good.Path)
	}
}
