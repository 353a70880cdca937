package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/adeola-io/pdf-renamer/internal/acquire"
	"github.com/adeola-io/pdf-renamer/internal/common"
	"github.com/adeola-io/pdf-renamer/internal/extract"
	"github.com/adeola-io/pdf-renamer/internal/namer"
	"github.com/adeola-io/pdf-renamer/internal/ocr"
	"github.com/adeola-io/pdf-renamer/internal/scan"
	"github.com/adeola-io/pdf-renamer/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
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

	inspector := extract.NewInspector()
	scanner := scan.NewScanner(acq, namer.New(namerCfg), inspector, cfg.Pipeline.MaxPages, logger)
	svc := server.NewService(scanner, inspector, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := server.Serve(ctx, cfg.Server.HTTPAddr, svc.Router(), logger); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
