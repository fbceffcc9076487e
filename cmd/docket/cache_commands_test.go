package main

import (
	"testing"
)

func TestCacheStatsAndPurge(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "stats"}, "")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries:  0")

	out, _, err = runCLI(t, []string{"cache", "purge"}, "")
	if err != nil {
		t.Fatalf("cache purge: %v", err)
	}
	requireContains(t, out, "Removed 0 cached classifications")
}
