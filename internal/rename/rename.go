// Package rename applies confirmed proposals to the filesystem. The
// conflict policy matches what a careful human would do by hand: never
// overwrite, never rename a file onto itself, never let one failure
// stop the batch.
package rename

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adeola-io/pdf-renamer/internal/scan"
)

// Stats summarizes an apply pass.
type Stats struct {
	Renamed uint32 `json:"renamed"`
	Skipped uint32 `json:"skipped"`
	Failed  uint32 `json:"failed"`
}

// Apply renames each candidate's source file to its proposed name,
// inside the source's own directory. Candidates whose target equals the
// source or already exists are skipped.
func Apply(candidates []scan.Candidate, logger *slog.Logger) Stats {
	if logger == nil {
		logger = slog.Default()
	}

	var stats Stats
	for _, c := range candidates {
		target := filepath.Join(filepath.Dir(c.SourcePath), c.ProposedName)

		if samePath(c.SourcePath, target) {
			stats.Skipped++
			continue
		}
		if _, err := os.Stat(target); err == nil {
			logger.Info("target exists, skipping", "source", c.SourcePath, "target", target)
			stats.Skipped++
			continue
		}

		if err := os.Rename(c.SourcePath, target); err != nil {
			logger.Error("rename failed", "source", c.SourcePath, "target", target, "error", err)
			stats.Failed++
			continue
		}
		logger.Info("renamed", "source", c.SourcePath, "target", target)
		stats.Renamed++
	}
	return stats
}

func samePath(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return aa == bb
}
