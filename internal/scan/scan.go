// Package scan walks a folder (or an explicit selection) and produces
// rename candidates for review. Candidates live in memory only and are
// regenerated on every scan, so a re-scan over unchanged files yields
// the same proposals.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/adeola-io/pdf-renamer/constants"
	"github.com/adeola-io/pdf-renamer/internal/extract"
	"github.com/adeola-io/pdf-renamer/internal/namer"
)

// TextAcquirer is the acquisition pipeline the scanner depends on.
type TextAcquirer interface {
	Acquire(ctx context.Context, path string, maxPages int) (extract.TextExtractionResult, error)
}

// Inspector probes document structure; optional, best-effort.
type Inspector interface {
	Inspect(path string) (extract.DocInfo, error)
}

// Candidate pairs a document with its proposed filename.
type Candidate struct {
	ID            uuid.UUID        `json:"id"`
	SourcePath    string           `json:"source_path"`
	OriginalName  string           `json:"original_name"`
	ProposedName  string           `json:"proposed_name"`
	Method        constants.Method `json:"method"`
	Pages         int              `json:"pages,omitempty"`
	LikelyScanned bool             `json:"likely_scanned,omitempty"`
}

// Stats summarizes a scan pass.
type Stats struct {
	Scanned  uint32 `json:"scanned"`
	Matched  uint32 `json:"matched"`
	Proposed uint32 `json:"proposed"`
	NoText   uint32 `json:"no_text"`
}

type Scanner struct {
	acquirer  TextAcquirer
	namer     *namer.Namer
	inspector Inspector // nil disables structure probing
	maxPages  int
	logger    *slog.Logger
}

func NewScanner(acquirer TextAcquirer, n *namer.Namer, inspector Inspector, maxPages int, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	if maxPages <= 0 {
		maxPages = 2
	}
	return &Scanner{acquirer: acquirer, namer: n, inspector: inspector, maxPages: maxPages, logger: logger}
}

// ScanDirectory walks root, filters to PDFs, and proposes a name for
// each, in sorted path order. Hidden files and directories are skipped
// when skipHidden is set. Per-file failures never abort the pass.
func (s *Scanner) ScanDirectory(ctx context.Context, root string, skipHidden bool) ([]Candidate, Stats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, Stats{}, errors.New("root path is required")
	}

	var paths []string
	var stats Stats
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Warn("walk entry", "path", path, "error", walkErr)
			return nil // continue walking
		}
		if skipHidden && isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsPDF(path) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	sort.Strings(paths)
	candidates := s.scanPaths(ctx, paths, &stats)
	return candidates, stats, nil
}

// ScanFiles proposes names for an explicit selection, in the order the
// caller supplied them.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string) ([]Candidate, Stats) {
	var stats Stats
	var matched []string
	for _, p := range paths {
		stats.Scanned++
		if !constants.IsPDF(p) {
			continue
		}
		stats.Matched++
		matched = append(matched, p)
	}
	return s.scanPaths(ctx, matched, &stats), stats
}

func (s *Scanner) scanPaths(ctx context.Context, paths []string, stats *Stats) []Candidate {
	candidates := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		c := s.propose(ctx, path)
		if c.Method == constants.MethodFallback {
			stats.NoText++
		}
		stats.Proposed++
		candidates = append(candidates, c)
	}
	return candidates
}

func (s *Scanner) propose(ctx context.Context, path string) Candidate {
	c := Candidate{
		ID:           uuid.New(),
		SourcePath:   path,
		OriginalName: filepath.Base(path),
		Method:       constants.MethodFallback,
	}

	res, err := s.acquirer.Acquire(ctx, path, s.maxPages)
	if err != nil {
		s.logger.Info("no text available, keeping original base", "path", path, "error", err)
	} else {
		c.Method = res.Method
		c.Pages = res.Pages
	}
	c.ProposedName = s.namer.Propose(res.Text, constants.BaseName(path), constants.PDFExtension)

	if s.inspector != nil {
		if info, ierr := s.inspector.Inspect(path); ierr == nil {
			c.Pages = info.PageCount
			c.LikelyScanned = info.HasImageStreams && c.Method != constants.MethodPDFText
		}
	}
	return c
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
