package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adeola-io/pdf-renamer/internal/scan"
)

func write(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestApply_RenamesAndReportsStats(t *testing.T) {
	dir := t.TempDir()
	src := write(t, dir, "old name.pdf")

	stats := Apply([]scan.Candidate{
		{SourcePath: src, ProposedName: "ACME - Annual Report.pdf"},
	}, nil)

	if stats.Renamed != 1 || stats.Skipped != 0 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 1 renamed", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "ACME - Annual Report.pdf")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still present after rename")
	}
}

func TestApply_SkipsWhenTargetEqualsSource(t *testing.T) {
	dir := t.TempDir()
	src := write(t, dir, "same.pdf")

	stats := Apply([]scan.Candidate{
		{SourcePath: src, ProposedName: "same.pdf"},
	}, nil)

	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Errorf("stats = %+v, want 1 skipped", stats)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source disturbed: %v", err)
	}
}

func TestApply_SkipsWhenTargetExists(t *testing.T) {
	dir := t.TempDir()
	src := write(t, dir, "a.pdf")
	write(t, dir, "taken.pdf")

	stats := Apply([]scan.Candidate{
		{SourcePath: src, ProposedName: "taken.pdf"},
	}, nil)

	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Errorf("stats = %+v, want 1 skipped", stats)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source disturbed: %v", err)
	}
}

func TestApply_OneFailureDoesNotStopBatch(t *testing.T) {
	dir := t.TempDir()
	good := write(t, dir, "good.pdf")

	stats := Apply([]scan.Candidate{
		{SourcePath: filepath.Join(dir, "ghost.pdf"), ProposedName: "whatever.pdf"},
		{SourcePath: good, ProposedName: "renamed.pdf"},
	}, nil)

	if stats.Failed != 1 {
		t.Errorf("stats = %+v, want 1 failed", stats)
	}
	if stats.Renamed != 1 {
		t.Errorf("stats = %+v, want the batch to continue past the failure", stats)
	}
}
