package constants

import (
	"path/filepath"
	"strings"
)

// PDFExtension is the extension appended to every proposed filename.
const PDFExtension = ".pdf"

// AllowedExtensions holds the file extensions the scanner picks up.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDF reports whether path has a .pdf extension (case-insensitive).
func IsPDF(path string) bool {
	return NormalizeExt(filepath.Ext(path)) == "pdf"
}

// BaseName returns the filename without directory or extension,
// the fallback base used when no better name can be derived.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
