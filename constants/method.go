package constants

// Method is the canonical label for how text was obtained from a document.
type Method string

// Stable values (surface in logs, reports, and the HTTP API).
const (
	MethodPDFText  Method = "pdf-text" // embedded text extraction
	MethodPDFOCR   Method = "pdf-ocr"  // rasterize + tesseract fallback
	MethodFallback Method = "fallback" // no text available, original base kept
)
