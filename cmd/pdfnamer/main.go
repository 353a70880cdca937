package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/adeola-io/pdf-renamer/internal/acquire"
	"github.com/adeola-io/pdf-renamer/internal/common"
	"github.com/adeola-io/pdf-renamer/internal/export"
	"github.com/adeola-io/pdf-renamer/internal/extract"
	"github.com/adeola-io/pdf-renamer/internal/namer"
	"github.com/adeola-io/pdf-renamer/internal/ocr"
	"github.com/adeola-io/pdf-renamer/internal/rename"
	"github.com/adeola-io/pdf-renamer/internal/scan"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir       = flag.String("dir", "", "directory to scan for PDFs")
		files     = flag.String("files", "", "comma-separated list of PDF paths (overrides -dir)")
		lookup    = flag.String("lookup", "", "company-code lookup JSON file (optional)")
		uppercase = flag.Bool("uppercase", false, "force proposed names to upper case")
		apply     = flag.Bool("apply", false, "perform the renames after previewing")
		out       = flag.String("out", "", "write the review table to an XLSX file (optional)")
		maxPages  = flag.Int("max-pages", 0, "pages to read per document (default from env, 2)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *dir == "" && *files == "" {
		printError("Error: either -dir or -files is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// Setup logger: table goes to stdout, logs stay on stderr
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *maxPages > 0 {
		cfg.Pipeline.MaxPages = *maxPages
	}
	if *uppercase {
		cfg.Namer.Uppercase = true
	}
	if *lookup != "" {
		cfg.Namer.LookupPath = *lookup
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	namerCfg := namer.DefaultConfig()
	namerCfg.Uppercase = cfg.Namer.Uppercase
	if cfg.Namer.LookupPath != "" {
		codes, err := namer.LoadCompanyCodes(cfg.Namer.LookupPath)
		if err != nil {
			logger.Error("load company lookup", "path", cfg.Namer.LookupPath, "error", err)
			os.Exit(1)
		}
		namerCfg.CompanyCodes = codes
	}

	acq := acquire.NewAcquirer(
		extract.NewNativeExtractor(logger),
		ocr.NewExtractor(ocr.Config{
			Pdftoppm:      cfg.OCR.Pdftoppm,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			DPI:           cfg.OCR.DPI,
			TessdataDir:   cfg.OCR.TessdataDir,
		}, logger),
		cfg.Pipeline.MinTextLen,
		logger,
	)
	scanner := scan.NewScanner(acq, namer.New(namerCfg), extract.NewInspector(), cfg.Pipeline.MaxPages, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var candidates []scan.Candidate
	var stats scan.Stats
	if *files != "" {
		paths := strings.Split(*files, ",")
		for i := range paths {
			paths[i] = strings.TrimSpace(paths[i])
		}
		candidates, stats = scanner.ScanFiles(ctx, paths)
	} else {
		var err error
		candidates, stats, err = scanner.ScanDirectory(ctx, *dir, true)
		if err != nil {
			logger.Error("scan failed", "dir", *dir, "error", err)
			os.Exit(1)
		}
	}

	if len(candidates) == 0 {
		fmt.Println("No PDF files found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Original", "Proposed", "Method"})
	for _, c := range candidates {
		table.Append([]string{c.OriginalName, c.ProposedName, string(c.Method)})
	}
	table.Render()
	fmt.Printf("Scanned %d file(s), %d PDF(s), %d proposal(s), %d with no text.\n",
		stats.Scanned, stats.Matched, stats.Proposed, stats.NoText)

	if *out != "" {
		if err := export.NewService(logger).WriteReportXLSX(candidates, *out); err != nil {
			logger.Error("write report", "path", *out, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Review report written to %s\n", *out)
	}

	if !*apply {
		fmt.Println("Preview only. Re-run with -apply to rename.")
		return
	}

	res := rename.Apply(candidates, logger)
	fmt.Printf("Renamed: %d  Skipped (same/exist): %d  Errors: %d\n",
		res.Renamed, res.Skipped, res.Failed)
}
