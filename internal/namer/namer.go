// Package namer derives a candidate filename from extracted document
// text. It is pure and stateless: identical text always yields an
// identical proposal, so repeated scans stay reviewable.
package namer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/adeola-io/pdf-renamer/constants"
)

// Config is the namer's full policy surface. The zero value of any
// field falls back to the default, so tests can override a single knob.
type Config struct {
	MinLineLen        int // lines shorter than this are discarded
	CompanyScanLines  int // how deep to look for the company line
	DescScanLines     int // how deep to look for the description line
	MinCompanyLetters int // letters required in a company line
	MinDescLen        int // minimum description line length
	MaxCompanyLen     int // truncation limit for the company part
	MaxDescLen        int // truncation limit for the description part

	// Uppercase forces the whole proposal to upper case.
	Uppercase bool

	// CompanyCodes maps known company identifiers (exact or substring,
	// matched case-insensitively) to short canonical codes. When set,
	// it replaces the positional company heuristic.
	CompanyCodes map[string]string

	// UnknownCompany is used when CompanyCodes is set but nothing in
	// the text matches and no uppercase run is found.
	UnknownCompany string
}

func DefaultConfig() Config {
	return Config{
		MinLineLen:        3,
		CompanyScanLines:  30,
		DescScanLines:     60,
		MinCompanyLetters: 6,
		MinDescLen:        6,
		MaxCompanyLen:     60,
		MaxDescLen:        80,
		UnknownCompany:    "UNKNOWN",
	}
}

var reUpperRun = regexp.MustCompile(`[A-Z]{3,}`)

type Namer struct {
	cfg Config

	// normalized lookup table: uppercased keys, most specific first,
	// order fixed so proposals stay deterministic
	codes    map[string]string
	codeKeys []string
}

func New(cfg Config) *Namer {
	def := DefaultConfig()
	if cfg.MinLineLen <= 0 {
		cfg.MinLineLen = def.MinLineLen
	}
	if cfg.CompanyScanLines <= 0 {
		cfg.CompanyScanLines = def.CompanyScanLines
	}
	if cfg.DescScanLines <= 0 {
		cfg.DescScanLines = def.DescScanLines
	}
	if cfg.MinCompanyLetters <= 0 {
		cfg.MinCompanyLetters = def.MinCompanyLetters
	}
	if cfg.MinDescLen <= 0 {
		cfg.MinDescLen = def.MinDescLen
	}
	if cfg.MaxCompanyLen <= 0 {
		cfg.MaxCompanyLen = def.MaxCompanyLen
	}
	if cfg.MaxDescLen <= 0 {
		cfg.MaxDescLen = def.MaxDescLen
	}
	if cfg.UnknownCompany == "" {
		cfg.UnknownCompany = def.UnknownCompany
	}

	n := &Namer{cfg: cfg}
	if len(cfg.CompanyCodes) > 0 {
		n.codes = make(map[string]string, len(cfg.CompanyCodes))
		for k, v := range cfg.CompanyCodes {
			n.codes[cleanUpper(k)] = v
		}
		n.codeKeys = make([]string, 0, len(n.codes))
		for k := range n.codes {
			n.codeKeys = append(n.codeKeys, k)
		}
		// longest key first, so "AQ PACK (PENANG) SDN BHD" wins over
		// a shorter prefix of itself; ties break lexicographically
		sort.Slice(n.codeKeys, func(i, j int) bool {
			if len(n.codeKeys[i]) != len(n.codeKeys[j]) {
				return len(n.codeKeys[i]) > len(n.codeKeys[j])
			}
			return n.codeKeys[i] < n.codeKeys[j]
		})
	}
	return n
}

// Propose maps extracted text to a candidate filename. It never fails:
// when text is empty or yields nothing usable, the sanitized fallback
// base (the document's current name) is proposed instead. The result is
// always non-empty, ends in ext, and contains no reserved characters.
func (n *Namer) Propose(text, fallbackBase, ext string) string {
	if ext == "" {
		ext = constants.PDFExtension
	}
	if strings.TrimSpace(text) == "" {
		return n.finalize(fallbackBase, ext)
	}

	lines := usableLines(text, n.cfg.MinLineLen)

	company := n.pickCompany(lines)
	desc := n.pickDescription(lines, company)

	if len(n.codes) > 0 {
		company = n.resolveCompany(text)
	}

	if company == "" && desc == "" {
		return n.finalize(fallbackBase, ext)
	}

	company = truncateAtWord(company, n.cfg.MaxCompanyLen)
	desc = truncateAtWord(desc, n.cfg.MaxDescLen)

	var base string
	switch {
	case company != "" && desc != "":
		base = company + " - " + desc
	case company != "":
		base = company
	default:
		base = desc
	}
	return n.finalize(base, ext)
}

func (n *Namer) finalize(base, ext string) string {
	s := Sanitize(base)
	if n.cfg.Uppercase {
		s = strings.ToUpper(s)
	}
	if s == "" {
		s = "document"
	}
	return s + ext
}

// usableLines trims every line and drops the empty and too-short ones,
// preserving page order.
func usableLines(text string, minLen int) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if len([]rune(ln)) >= minLen {
			lines = append(lines, ln)
		}
	}
	return lines
}

// pickCompany selects the first of the leading lines where letters
// dominate digits. Lines that are mostly numbers (invoice numbers,
// dates, account references) never qualify.
func (n *Namer) pickCompany(lines []string) string {
	limit := len(lines)
	if limit > n.cfg.CompanyScanLines {
		limit = n.cfg.CompanyScanLines
	}
	for _, ln := range lines[:limit] {
		letters, digits := 0, 0
		for _, r := range ln {
			switch {
			case unicode.IsLetter(r):
				letters++
			case unicode.IsDigit(r):
				digits++
			}
		}
		if letters >= n.cfg.MinCompanyLetters && letters > digits {
			return ln
		}
	}
	return ""
}

// pickDescription selects the first remaining line of useful length,
// skipping the line already chosen as company.
func (n *Namer) pickDescription(lines []string, company string) string {
	limit := len(lines)
	if limit > n.cfg.DescScanLines {
		limit = n.cfg.DescScanLines
	}
	for _, ln := range lines[:limit] {
		if company != "" && ln == company {
			continue
		}
		if len([]rune(ln)) >= n.cfg.MinDescLen {
			return ln
		}
	}
	return ""
}

// resolveCompany maps the text to a canonical short code: a lookup
// table hit first, then the first run of 3+ consecutive uppercase
// letters, then the configured unknown marker.
func (n *Namer) resolveCompany(text string) string {
	cleaned := cleanUpper(text)
	for _, k := range n.codeKeys {
		if strings.Contains(cleaned, k) {
			return n.codes[k]
		}
	}
	if m := reUpperRun.FindString(cleaned); m != "" {
		return m
	}
	return n.cfg.UnknownCompany
}
