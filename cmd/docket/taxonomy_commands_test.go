package main

import (
	"testing"
)

func TestTaxonomyShowListsBuiltinVocabulary(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"taxonomy", "show"}, "")
	if err != nil {
		t.Fatalf("taxonomy show: %v", err)
	}
	requireContains(t, out, "financial")
	requireContains(t, out, "banking")
	requireContains(t, out, "statement")
}

func TestTaxonomyResolve(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"taxonomy", "resolve", "finances"}, "")
	if err != nil {
		t.Fatalf("taxonomy resolve: %v", err)
	}
	requireContains(t, out, "domain: financial")

	out, _, err = runCLI(t, []string{"taxonomy", "resolve", "checking", "--domain", "financial"}, "")
	if err != nil {
		t.Fatalf("taxonomy resolve with domain: %v", err)
	}
	requireContains(t, out, "category (financial): banking")

	if _, _, err := runCLI(t, []string{"taxonomy", "resolve", "astrology"}, ""); err == nil {
		t.Fatal("expected error for unresolvable term")
	}
}
