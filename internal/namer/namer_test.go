package namer

import (
	"strings"
	"testing"
)

const reservedChars = `\/:*?"<>|`

func TestPropose_EmptyTextFallsBackToBase(t *testing.T) {
	n := New(DefaultConfig())
	got := n.Propose("", "Invoice123", ".pdf")
	if got != "Invoice123.pdf" {
		t.Errorf("Propose = %q, want %q", got, "Invoice123.pdf")
	}
}

func TestPropose_ComposesCompanyAndDescription(t *testing.T) {
	n := New(DefaultConfig())
	text := "TENAGA NASIONAL\n12345\nMonthly Electricity Bill\n"
	got := n.Propose(text, "scan001", ".pdf")
	want := "TENAGA NASIONAL - Monthly Electricity Bill.pdf"
	if got != want {
		t.Errorf("Propose = %q, want %q", got, want)
	}
}

func TestPropose_DigitLineNeverChosenAsCompany(t *testing.T) {
	n := New(DefaultConfig())
	// first line is digits and punctuation only; must not become company
	text := "2024-03-15 00123456\nACME CORPORATION\nQuarterly Statement\n"
	got := n.Propose(text, "x", ".pdf")
	if !strings.HasPrefix(got, "ACME CORPORATION") {
		t.Errorf("Propose = %q, want company ACME CORPORATION", got)
	}
}

func TestPropose_AlwaysSafeAndSuffixed(t *testing.T) {
	n := New(DefaultConfig())
	inputs := []struct{ text, base string }{
		{"", "plain"},
		{"", `we/ird:na*me?`},
		{`A/B: Systems <Ltd>\n`, "base"},
		{"no usable\n\n\nlines\n12\n", "fallback"},
		{"ACME | PIPES \"QUOTED\"\nInvoice for services rendered\n", "y"},
	}
	for _, in := range inputs {
		got := n.Propose(in.text, in.base, ".pdf")
		if got == "" {
			t.Fatalf("Propose(%q, %q) returned empty string", in.text, in.base)
		}
		if !strings.HasSuffix(got, ".pdf") {
			t.Errorf("Propose(%q, %q) = %q, missing .pdf suffix", in.text, in.base, got)
		}
		if strings.ContainsAny(got, reservedChars) {
			t.Errorf("Propose(%q, %q) = %q, contains reserved characters", in.text, in.base, got)
		}
	}
}

func TestPropose_Deterministic(t *testing.T) {
	n := New(Config{CompanyCodes: map[string]string{
		"TENAGA NASIONAL": "TNB",
		"MAXIS":           "MAXIS",
		"AQ PACK (M) SDN BHD":      "AQP",
		"AQ PACK (PENANG) SDN BHD": "AQPP",
	}})
	text := "AQ PACK (PENANG) SDN BHD\nDelivery Order 4471\nPacking List\n"
	first := n.Propose(text, "doc", ".pdf")
	for i := 0; i < 20; i++ {
		if got := n.Propose(text, "doc", ".pdf"); got != first {
			t.Fatalf("Propose not deterministic: %q then %q", first, got)
		}
	}
}

func TestPropose_LookupPrefersMostSpecificKey(t *testing.T) {
	n := New(Config{CompanyCodes: map[string]string{
		"AQ PACK (M) SDN BHD":      "AQP",
		"AQ PACK (PENANG) SDN BHD": "AQPP",
	}})
	text := "AQ PACK (PENANG) SDN BHD\nDelivery Order\n"
	got := n.Propose(text, "doc", ".pdf")
	if !strings.HasPrefix(got, "AQPP") {
		t.Errorf("Propose = %q, want AQPP prefix", got)
	}
}

func TestPropose_LookupFallsBackToUppercaseRun(t *testing.T) {
	n := New(Config{CompanyCodes: map[string]string{"MAXIS": "MAXIS"}})
	text := "INVOICE from Semantic Works\nService charges for March\n"
	got := n.Propose(text, "doc", ".pdf")
	if !strings.HasPrefix(got, "INVOICE") {
		t.Errorf("Propose = %q, want first uppercase run INVOICE", got)
	}
}

func TestPropose_LookupUnknownMarker(t *testing.T) {
	n := New(Config{CompanyCodes: map[string]string{"MAXIS": "MAXIS"}})
	// no 3+ letter run anywhere, so neither the table nor the
	// uppercase-run fallback can resolve a company
	text := "12 34 56\nab cd 99\n"
	got := n.Propose(text, "doc", ".pdf")
	if !strings.HasPrefix(got, "UNKNOWN") {
		t.Errorf("Propose = %q, want UNKNOWN prefix", got)
	}
}

func TestPropose_TruncatesAtWordBoundary(t *testing.T) {
	n := New(DefaultConfig())
	long := strings.Repeat("electricity ", 20) // ~240 chars of words
	text := "TENAGA NASIONAL\n" + long + "\n"
	got := n.Propose(text, "doc", ".pdf")

	base := strings.TrimSuffix(got, ".pdf")
	parts := strings.SplitN(base, " - ", 2)
	if len(parts) != 2 {
		t.Fatalf("Propose = %q, want company - description", got)
	}
	desc := parts[1]
	if len([]rune(desc)) > 80 {
		t.Errorf("description %q longer than 80 runes", desc)
	}
	for _, w := range strings.Fields(desc) {
		if w != "electricity" {
			t.Errorf("truncation split a word: got token %q", w)
		}
	}
}

func TestPropose_UppercaseVariant(t *testing.T) {
	n := New(Config{Uppercase: true})
	got := n.Propose("Tenaga Nasional Berhad\nMonthly Electricity Bill\n", "doc", ".pdf")
	want := "TENAGA NASIONAL BERHAD - MONTHLY ELECTRICITY BILL.pdf"
	if got != want {
		t.Errorf("Propose = %q, want %q", got, want)
	}
}

func TestPropose_DescriptionOnlyWhenNoCompanyQualifies(t *testing.T) {
	// every candidate company line is digit-dominated, but a later line
	// still qualifies as description
	n := New(Config{DescScanLines: 60})
	text := "12345\n98765\nstatement of account\n"
	got := n.Propose(text, "doc", ".pdf")
	want := "statement of account.pdf"
	if got != want {
		t.Errorf("Propose = %q, want %q", got, want)
	}
}

func TestPropose_ShortLinesDiscarded(t *testing.T) {
	n := New(DefaultConfig())
	// "ab" is below the 3-char minimum and must not appear anywhere
	got := n.Propose("ab\nACME HOLDINGS\nAnnual Report\n", "doc", ".pdf")
	want := "ACME HOLDINGS - Annual Report.pdf"
	if got != want {
		t.Errorf("Propose = %q, want %q", got, want)
	}
}

func TestPropose_CompanyLineNotReusedAsDescription(t *testing.T) {
	n := New(DefaultConfig())
	got := n.Propose("ACME HOLDINGS\nACME HOLDINGS\nAnnual Report\n", "doc", ".pdf")
	want := "ACME HOLDINGS - Annual Report.pdf"
	if got != want {
		t.Errorf("Propose = %q, want %q", got, want)
	}
}

func TestPropose_EmptyBaseStillNonEmpty(t *testing.T) {
	n := New(DefaultConfig())
	got := n.Propose("", "", ".pdf")
	if got == ".pdf" || got == "" {
		t.Errorf("Propose = %q, want a non-empty base", got)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("Propose = %q, missing extension", got)
	}
}
