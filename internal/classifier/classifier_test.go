package classifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docket/internal/classifier"
	"docket/internal/services"
	"docket/internal/taxonomy"
)

type stubCompleter struct {
	payload string
	err     error

	gotSystem string
	gotUser   string
}

func (s *stubCompleter) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	return s.payload, s.err
}

func TestClassifyParsesAndCleansPayload(t *testing.T) {
	stub := &stubCompleter{payload: `{
		"domain": " Financial ",
		"category": "banking",
		"doctype": "statement",
		"vendor": "www.Chase.com",
		"subject": "Explanation of Benefits",
		"date": "2024-01-15"
	}`}
	c := classifier.New(stub, taxonomy.Builtin(), nil)

	raw, err := c.Classify(context.Background(), "statement text", "chase.pdf")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if raw.Domain != "Financial" {
		t.Fatalf("unexpected domain: %q", raw.Domain)
	}
	if raw.Vendor != "chase" {
		t.Fatalf("unexpected vendor: %q", raw.Vendor)
	}
	if raw.Subject != "explanation_benefits" {
		t.Fatalf("unexpected subject: %q", raw.Subject)
	}
	if raw.Date != "20240115" {
		t.Fatalf("unexpected date: %q", raw.Date)
	}
	if !strings.Contains(stub.gotUser, "Filename: chase.pdf") {
		t.Fatalf("expected filename in user prompt, got: %s", stub.gotUser)
	}
}

func TestClassifySystemPromptListsVocabulary(t *testing.T) {
	stub := &stubCompleter{payload: `{"domain":"tax","category":"federal","doctype":"1099","vendor":"irs","subject":"","date":""}`}
	c := classifier.New(stub, taxonomy.Builtin(), nil)

	if _, err := c.Classify(context.Background(), "some text", "f.pdf"); err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	for _, want := range []string{"financial: banking", "tax:", "statement", "1099"} {
		if !strings.Contains(stub.gotSystem, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, stub.gotSystem)
		}
	}
}

func TestClassifyRejectsEmptyContent(t *testing.T) {
	c := classifier.New(&stubCompleter{}, nil, nil)
	_, err := c.Classify(context.Background(), "   ", "f.pdf")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestClassifyWrapsCompletionFailure(t *testing.T) {
	c := classifier.New(&stubCompleter{err: errors.New("boom")}, nil, nil)
	_, err := c.Classify(context.Background(), "text", "f.pdf")
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient error, got: %v", err)
	}
}

func TestClassifyWrapsMalformedPayload(t *testing.T) {
	c := classifier.New(&stubCompleter{payload: "not json at all"}, nil, nil)
	_, err := c.Classify(context.Background(), "text", "f.pdf")
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient error, got: %v", err)
	}
}

func TestNormalizeVendor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Walmart.com", "walmart"},
		{"www.amazon.com", "amazon"},
		{"Bank & Trust Co.", "bank_trust_co"},
		{"AT&T Wireless", "att_wireless"},
		{"  Chase  ", "chase"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := classifier.NormalizeVendor(tc.in); got != tc.want {
			t.Errorf("NormalizeVendor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"explanation of benefits", "explanation_benefits"},
		{"bill of sale", "bill_sale"},
		{"Annual Report", "annual_report"},
		{"a trip to the lake", "trip_lake"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := classifier.NormalizeSubject(tc.in); got != tc.want {
			t.Errorf("NormalizeSubject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
