package pathbuild

import (
	"errors"
	"strings"
	"testing"

	"docket/internal/services"
)

func baseRequest() Request {
	return Request{
		Domain:    "financial",
		Category:  "banking",
		Doctype:   "statement",
		Vendor:    "chase",
		Subject:   "checking",
		Date:      "20240115",
		Extension: ".pdf",
	}
}

func newBuilder(t *testing.T, opts Options) *Builder {
	t.Helper()
	if opts.Style == "" {
		opts.Style = "compact"
	}
	b, err := New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return b
}

func TestNewRejectsUnknownStyle(t *testing.T) {
	_, err := New(Options{Style: "ornate"})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestBuildCompact(t *testing.T) {
	b := newBuilder(t, Options{Style: "compact"})
	got, err := b.Build(baseRequest())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got.DirectoryPath != "Financial/Banking/Statements/" {
		t.Errorf("DirectoryPath = %q", got.DirectoryPath)
	}
	if got.Filename != "chase_20240115.pdf" {
		t.Errorf("Filename = %q", got.Filename)
	}
	if got.FullPath != got.DirectoryPath+got.Filename {
		t.Errorf("FullPath = %q, want concatenation", got.FullPath)
	}
}

func TestBuildDescriptive(t *testing.T) {
	b := newBuilder(t, Options{Style: "descriptive"})
	got, err := b.Build(baseRequest())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got.DirectoryPath != "Financial/Banking/Statements/" {
		t.Errorf("DirectoryPath = %q", got.DirectoryPath)
	}
	if got.Filename != "statement_chase_checking_20240115.pdf" {
		t.Errorf("Filename = %q", got.Filename)
	}
}

func TestBuildEmptyDateOmitsSegment(t *testing.T) {
	req := baseRequest()
	req.Date = ""

	compact := newBuilder(t, Options{Style: "compact"})
	got, err := compact.Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got.Filename != "chase.pdf" {
		t.Errorf("compact Filename = %q, want no trailing separator", got.Filename)
	}

	descriptive := newBuilder(t, Options{Style: "descriptive"})
	got, err = descriptive.Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got.Filename != "statement_chase_checking.pdf" {
		t.Errorf("descriptive Filename = %q, want no trailing separator", got.Filename)
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := newBuilder(t, Options{Style: "descriptive"})
	first, err := b.Build(baseRequest())
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build(baseRequest())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("identical inputs diverged: %+v vs %+v", first, second)
	}
}

func TestBuildNormalizesCaseAndWhitespace(t *testing.T) {
	b := newBuilder(t, Options{Style: "compact"})
	canonical, err := b.Build(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	req := baseRequest()
	req.Domain = "  FINANCIAL "
	req.Vendor = " Chase"
	req.Category = "BANKING  "
	messy, err := b.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if messy != canonical {
		t.Fatalf("case/whitespace changed output: %+v vs %+v", messy, canonical)
	}
}

func TestBuildRejectsReservedVendors(t *testing.T) {
	for _, style := range []string{"compact", "descriptive"} {
		b := newBuilder(t, Options{Style: style})
		for _, vendor := range []string{"", "unknown", "n/a", "na", "none", "generic"} {
			req := baseRequest()
			req.Vendor = vendor
			if _, err := b.Build(req); !errors.Is(err, services.ErrValidation) {
				t.Errorf("style %s vendor %q: expected validation error, got %v", style, vendor, err)
			}
		}
	}
}

func TestBuildTruncatesSubjectOnOverflow(t *testing.T) {
	b := newBuilder(t, Options{Style: "descriptive"})
	req := baseRequest()
	req.Subject = strings.Repeat("a", 300)

	got, err := b.Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(got.FullPath) > DefaultMaxPathLength {
		t.Fatalf("FullPath length %d exceeds limit %d", len(got.FullPath), DefaultMaxPathLength)
	}
	for _, verbatim := range []string{"Financial", "Banking", "Statements", "statement", "chase", "20240115"} {
		if !strings.Contains(got.FullPath, verbatim) {
			t.Errorf("FullPath missing verbatim component %q: %s", verbatim, got.FullPath)
		}
	}
	if !strings.Contains(got.Filename, "_aaa") {
		t.Errorf("subject should be truncated, not dropped: %s", got.Filename)
	}
}

func TestBuildFailsWhenTruncationCannotFit(t *testing.T) {
	// Compact ignores the subject, so truncation cannot reclaim anything.
	b := newBuilder(t, Options{Style: "compact"})
	req := baseRequest()
	req.Vendor = strings.Repeat("v", 250)
	_, err := b.Build(req)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "path too long") {
		t.Fatalf("expected path too long error, got %v", err)
	}

	// Descriptive with required fields alone already over the limit.
	b = newBuilder(t, Options{Style: "descriptive", MaxPathLength: 40})
	req = baseRequest()
	req.Subject = strings.Repeat("s", 50)
	if _, err := b.Build(req); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildHierarchyDepthExceeded(t *testing.T) {
	b := newBuilder(t, Options{Style: "compact", MaxHierarchyDepth: 2})
	_, err := b.Build(baseRequest())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "3") || !strings.Contains(err.Error(), "2") {
		t.Fatalf("depth error should report actual and maximum: %v", err)
	}
}

func TestBuildSinglePeriodEnforced(t *testing.T) {
	b := newBuilder(t, Options{Style: "compact"})

	req := baseRequest()
	req.Extension = ""
	if _, err := b.Build(req); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for missing extension, got %v", err)
	}

	req.Extension = "tar.gz"
	if _, err := b.Build(req); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for multi-period extension, got %v", err)
	}
}

func TestBuildNormalizesExtension(t *testing.T) {
	b := newBuilder(t, Options{Style: "compact"})
	req := baseRequest()
	req.Extension = "PDF"
	got, err := b.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got.Filename, ".pdf") {
		t.Fatalf("extension not normalized: %q", got.Filename)
	}
}

func TestBuildStructuralInvariantsHold(t *testing.T) {
	// Every successful build satisfies the structural rules regardless of
	// style or inputs.
	requests := []Request{
		baseRequest(),
		{Domain: "medical", Category: "providers", Doctype: "lab_results", Vendor: "quest", Subject: "annual_physical", Date: "2023", Extension: ".pdf"},
		{Domain: "tax", Category: "federal", Doctype: "1099", Vendor: "fidelity", Date: "2024", Extension: ".pdf", Version: "final"},
		{Domain: "property", Category: "home_improvement", Doctype: "estimate", Vendor: "bobs_roofing", Subject: strings.Repeat("long_subject_", 20), Extension: ".txt"},
	}
	for _, styleName := range []string{"compact", "descriptive"} {
		b := newBuilder(t, Options{Style: styleName})
		for _, req := range requests {
			got, err := b.Build(req)
			if err != nil {
				t.Fatalf("style %s: Build(%+v) returned error: %v", styleName, req, err)
			}
			segments := strings.Split(strings.TrimSuffix(got.DirectoryPath, "/"), "/")
			if len(segments) > DefaultMaxHierarchyDepth {
				t.Errorf("depth invariant violated: %v", segments)
			}
			for _, segment := range segments {
				if strings.Contains(segment, ".") {
					t.Errorf("folder %q contains a period", segment)
				}
			}
			if strings.Count(got.Filename, ".") != 1 {
				t.Errorf("filename %q does not contain exactly one period", got.Filename)
			}
			if len(got.FullPath) > DefaultMaxPathLength {
				t.Errorf("full path %q exceeds limit", got.FullPath)
			}
			if got.FullPath != got.DirectoryPath+got.Filename {
				t.Errorf("full path is not the concatenation: %+v", got)
			}
		}
	}
}

func TestValidateNoPeriodsInFolders(t *testing.T) {
	if err := validateNoPeriodsInFolders("Financial/Banking/Statements/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateNoPeriodsInFolders("Financial/Ban.king/"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTruncateSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		excess  int
		want    string
		wantOK  bool
	}{
		{"fits after truncation", "abcdef", 2, "abcd", true},
		{"empty subject", "", 3, "", false},
		{"excess too large", "ab", 5, "", false},
		{"exact removal leaves one char", "abc", 2, "a", true},
		{"trailing separators trimmed", "ab__cd", 2, "ab", true},
		{"only separators left", "a_____", 5, "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := truncateSubject(tt.subject, tt.excess)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("truncateSubject(%q, %d) = (%q, %v), want (%q, %v)",
					tt.subject, tt.excess, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
