package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adeola-io/pdf-renamer/internal/common"
)

func TestNativeExtractor_MissingFile(t *testing.T) {
	e := NewNativeExtractor(nil)
	_, err := e.Extract(context.Background(), "/nonexistent/nope.pdf", 2)
	if !errors.Is(err, common.ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestNativeExtractor_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewNativeExtractor(nil)
	_, err := e.Extract(context.Background(), path, 2)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
	if !errors.Is(err, common.ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestInspector_MissingFile(t *testing.T) {
	i := NewInspector()
	if _, err := i.Inspect("/nonexistent/nope.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
