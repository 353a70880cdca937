// Package acquire turns a document path into the best available plain
// text: embedded text first, OCR second. Its public surface never fails:
// every internal error collapses into an empty result, because a
// best-effort renamer must not abort a batch over one bad document.
package acquire

import (
	"context"
	"log/slog"

	"github.com/adeola-io/pdf-renamer/constants"
	"github.com/adeola-io/pdf-renamer/internal/common"
	"github.com/adeola-io/pdf-renamer/internal/extract"
)

// DefaultMinTextLen is the shortest direct-extraction result still
// considered usable. Anything shorter triggers the OCR fallback.
const DefaultMinTextLen = 50

type Acquirer struct {
	native     extract.TextExtractor
	ocr        extract.TextExtractor
	minTextLen int
	logger     *slog.Logger
}

func NewAcquirer(native, ocr extract.TextExtractor, minTextLen int, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if minTextLen <= 0 {
		minTextLen = DefaultMinTextLen
	}
	return &Acquirer{native: native, ocr: ocr, minTextLen: minTextLen, logger: logger}
}

// Acquire is the explicit-error form: it reports how text was obtained
// and returns ErrNoText when both strategies came up empty. The scan
// layer uses it to label candidates; external callers should prefer
// AcquireText.
func (a *Acquirer) Acquire(ctx context.Context, path string, maxPages int) (extract.TextExtractionResult, error) {
	res, err := a.native.Extract(ctx, path, maxPages)
	if err == nil && len(res.Text) >= a.minTextLen {
		return res, nil
	}
	if err != nil {
		a.logger.Debug("direct extraction failed, trying ocr", "path", path, "error", err)
	} else {
		a.logger.Debug("direct extraction too short, trying ocr", "path", path, "chars", len(res.Text))
	}

	ocrRes, ocrErr := a.ocr.Extract(ctx, path, maxPages)
	if ocrErr == nil && ocrRes.Text != "" {
		return ocrRes, nil
	}
	a.logger.Debug("ocr yielded no text", "path", path, "error", ocrErr)

	// Keep whatever the direct pass managed, even below the threshold:
	// a short header beats nothing at all.
	if res.Text != "" {
		return res, nil
	}
	res.Method = constants.MethodFallback
	return res, common.ErrNoText
}

// AcquireText returns the best available plain text for the first
// maxPages pages of the document at path, or "" when there is none.
// It never fails observably; "" is a valid, low-information outcome.
func (a *Acquirer) AcquireText(ctx context.Context, path string, maxPages int) string {
	res, err := a.Acquire(ctx, path, maxPages)
	if err != nil {
		return ""
	}
	return res.Text
}
