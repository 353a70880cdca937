package namer

import (
	"regexp"
	"strings"
)

var (
	// characters that are illegal or unsafe in filenames on the
	// platforms we care about
	reIllegal    = regexp.MustCompile(`[\\/:*?"<>|]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Sanitize makes a string safe to use as a filename: illegal characters
// become "-", whitespace runs collapse to a single space, surrounding
// whitespace is trimmed.
func Sanitize(name string) string {
	name = reIllegal.ReplaceAllString(name, "-")
	name = reWhitespace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// cleanUpper is the lookup-side cleaning: uppercase, illegal runs become
// a space rather than "-" so substring matching stays word-oriented.
func cleanUpper(s string) string {
	s = strings.ToUpper(s)
	s = reIllegal.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncateAtWord cuts s to at most max runes, backing up to the last
// word boundary inside the window when one exists.
func truncateAtWord(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
