package preflight_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docket/internal/config"
	"docket/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := preflight.CheckDirectoryAccess("Archive root", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}

	result = preflight.CheckDirectoryAccess("Archive root", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatal("expected failure for missing directory")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result = preflight.CheckDirectoryAccess("Archive root", file)
	if result.Passed {
		t.Fatal("expected failure for regular file")
	}
}

func TestCheckDiskSpace(t *testing.T) {
	result := preflight.CheckDiskSpace("Cache directory space", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}

	result = preflight.CheckDiskSpace("Cache directory space", filepath.Join(t.TempDir(), "missing"))
	if result.Passed {
		t.Fatal("expected failure for missing path")
	}
}

func TestCheckBinary(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "pdftotext")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	result := preflight.CheckBinary("pdftotext", "pdftotext", "required for PDF text extraction")
	if !result.Passed {
		t.Fatalf("expected pass with stub on PATH, got: %s", result.Detail)
	}

	result = preflight.CheckBinary("pdftotext", "definitely-not-installed", "")
	if result.Passed {
		t.Fatal("expected failure for missing binary")
	}

	result = preflight.CheckBinary("pdftotext", "", "")
	if result.Passed || result.Detail != "command not configured" {
		t.Fatalf("unexpected result for empty command: %+v", result)
	}
}

func TestCheckVocabularyOverride(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "vocab.yaml")
	contents := `
domains:
  - name: financial
    categories:
      - name: banking
doctypes:
  - name: statement
`
	if err := os.WriteFile(good, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	result := preflight.CheckVocabularyOverride(good)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("{not valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	result = preflight.CheckVocabularyOverride(bad)
	if result.Passed {
		t.Fatal("expected failure for malformed file")
	}
}

func TestCheckLLM(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	cfg := config.LLM{APIKey: "key", BaseURL: server.URL, Model: "test/model"}
	result := preflight.CheckLLM(context.Background(), "Classification LLM", cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}

	result = preflight.CheckLLM(context.Background(), "Classification LLM", config.LLM{})
	if result.Passed || result.Detail != "API key missing" {
		t.Fatalf("unexpected result for missing key: %+v", result)
	}
}

func TestCheckLLMAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := config.LLM{APIKey: "bad", BaseURL: server.URL, Model: "test/model"}
	result := preflight.CheckLLM(context.Background(), "Classification LLM", cfg)
	if result.Passed {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Detail, "authentication failed") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCKET_LLM_API_KEY", "")
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	results := preflight.RunAll(context.Background(), cfg)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"Archive root", "pdftotext", "Classification LLM"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing check %q in %s", want, joined)
		}
	}
}
