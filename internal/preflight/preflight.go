package preflight

import (
	"context"

	"docket/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config. Checks that
// depend on optional settings are skipped when those settings are absent.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Archive root", cfg.Paths.ArchiveRoot))
	results = append(results, CheckDiskSpace("Cache directory space", cfg.Paths.CacheDir))
	results = append(results, CheckBinary("pdftotext", cfg.PdftotextBinary(), "required for PDF text extraction"))

	if cfg.Taxonomy.OverridePath != "" {
		results = append(results, CheckVocabularyOverride(cfg.Taxonomy.OverridePath))
	}

	results = append(results, CheckLLM(ctx, "Classification LLM", cfg.LLM))

	return results
}
