package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/adeola-io/pdf-renamer/constants"
	"github.com/adeola-io/pdf-renamer/internal/common"
)

// NativeExtractor reads the text a PDF already carries, without any
// rendering or recognition. Works for non-scanned documents only.
type NativeExtractor struct {
	logger *slog.Logger
}

func NewNativeExtractor(logger *slog.Logger) *NativeExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &NativeExtractor{logger: logger}
}

func (e *NativeExtractor) Extract(ctx context.Context, path string, maxPages int) (res TextExtractionResult, err error) {
	start := time.Now()

	// the pdf library panics on some malformed xref tables; treat that
	// like any other unparseable document
	defer func() {
		if rec := recover(); rec != nil {
			res = TextExtractionResult{Method: constants.MethodPDFText, Duration: time.Since(start)}
			err = common.WrapError(common.ErrMalformedInput, fmt.Sprint(rec))
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{Method: constants.MethodPDFText, Duration: time.Since(start)},
			common.WrapError(common.ErrMalformedInput, err.Error())
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("close pdf", "path", path, "error", cerr)
		}
	}()

	pages := r.NumPage()
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	var warns []string
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{Method: constants.MethodPDFText, Duration: time.Since(start)}, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			// one broken page must not sink the document
			warns = append(warns, err.Error())
			continue
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(txt)
	}

	text := strings.TrimSpace(b.String())
	res = TextExtractionResult{
		Text:     text,
		Pages:    pages,
		Method:   constants.MethodPDFText,
		Duration: time.Since(start),
		Warnings: warns,
	}
	if text == "" {
		return res, common.ErrNoText
	}
	return res, nil
}
