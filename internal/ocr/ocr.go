package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adeola-io/pdf-renamer/constants"
	"github.com/adeola-io/pdf-renamer/internal/common"
	"github.com/adeola-io/pdf-renamer/internal/extract"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	// DPI for rasterizing scanned pages. The default of 144 is a 2x
	// upscale over the 72 DPI page base: accurate enough for headers,
	// much faster than archive-quality 300.
	DPI int

	TessdataDir string
	PSM         int // e.g. 6 is good for a uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use the engine default
}

// Extractor rasterizes PDF pages and runs tesseract over them. It is the
// fallback for scanned documents whose embedded text is missing or junk.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 144
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is the test seam: same extractor, stubbed commands.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

// Extract renders up to maxPages pages to PNG and OCRs each one in page
// order. A page that fails to render or recognize is skipped; the
// document only fails when no page yields text.
func (e *Extractor) Extract(ctx context.Context, path string, maxPages int) (extract.TextExtractionResult, error) {
	start := time.Now()
	res := extract.TextExtractionResult{Method: constants.MethodPDFOCR}

	tmpDir, err := os.MkdirTemp("", "pn-ppm-*")
	if err != nil {
		res.Duration = time.Since(start)
		return res, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	args := []string{"-r", fmt.Sprintf("%d", e.cfg.DPI), "-png"}
	if maxPages > 0 {
		args = append(args, "-f", "1", "-l", fmt.Sprintf("%d", maxPages))
	}
	args = append(args, path, prefix)

	// pdftoppm -r <dpi> -png -f 1 -l <n> <in.pdf> <tmp/page>
	if _, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, args...); err != nil {
		res.Warnings = append(res.Warnings, string(errb))
		res.Duration = time.Since(start)
		return res, common.WrapError(common.ErrMalformedInput, err.Error())
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if maxPages > 0 && len(matches) > maxPages {
		matches = matches[:maxPages]
	}
	if len(matches) == 0 {
		res.Warnings = append(res.Warnings, "pdftoppm produced no images")
		res.Duration = time.Since(start)
		return res, common.ErrNoText
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
			continue
		}
		txt = Normalize(txt)
		if txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}

	res.Text = strings.TrimSpace(b.String())
	res.Pages = len(matches)
	res.Duration = time.Since(start)
	if res.Text == "" {
		return res, common.ErrNoText
	}
	return res, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	// strip obvious box/line noise before anything downstream sees it
	return reBoxNoise.ReplaceAllString(string(out), ""), nil
}
