// Package export writes a scan pass out as an XLSX review sheet, for
// the people who want to check proposals somewhere other than a
// terminal.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adeola-io/pdf-renamer/internal/scan"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteReportXLSX writes the (original, proposed) review table to path.
func (s *Service) WriteReportXLSX(candidates []scan.Candidate, path string) error {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Proposals"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Original Filename",
		"Proposed Filename",
		"Method",
		"Pages",
		"Likely Scanned",
		"Source Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, c := range candidates {
		values := []any{
			c.OriginalName,
			c.ProposedName,
			string(c.Method),
			c.Pages,
			c.LikelyScanned,
			c.SourcePath,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	s.logger.Info("report written",
		"path", path,
		"rows", len(candidates),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
