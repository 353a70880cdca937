package extract

import (
	"context"
	"time"

	"github.com/adeola-io/pdf-renamer/constants"
)

// TextExtractor is a single strategy: document -> text.
// maxPages bounds how much of the document is read; implementations
// never read past it.
type TextExtractor interface {
	Extract(ctx context.Context, path string, maxPages int) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int // pages actually read
	Method   constants.Method
	Duration time.Duration
	Warnings []string
}
