package main

import "testing"

func TestRunExitCodes(t *testing.T) {
	setupCLITestEnv(t)

	if code := run([]string{"taxonomy", "show"}); code != 0 {
		t.Fatalf("expected exit 0 for success, got %d", code)
	}

	// Reserved vendor is a validation failure: retrying cannot fix it.
	args := []string{
		"path",
		"--domain", "financial",
		"--category", "banking",
		"--doctype", "statement",
		"--vendor", "unknown",
	}
	if code := run(args); code != 2 {
		t.Fatalf("expected exit 2 for validation failure, got %d", code)
	}

	if code := run([]string{"no-such-command"}); code != 1 {
		t.Fatalf("expected exit 1 for generic failure, got %d", code)
	}
}
