package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/cache"
	"docket/internal/classifier"
	"docket/internal/extract"
	"docket/internal/output"
	"docket/internal/pipeline"
	"docket/internal/services/llm"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var styleFlag string
	var strictFlag bool
	var noCacheFlag bool

	cmd := &cobra.Command{
		Use:   "classify PATH...",
		Short: "Classify documents and suggest archive paths",
		Long: `Classify extracts text from each document, asks the configured LLM for
metadata, resolves it against the taxonomy vocabulary, and prints the
suggested archive path. Files are never moved or modified.

Each PATH may be a file, a directory (walked recursively for supported
documents), or "-" to read newline-separated file paths from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if styleFlag != "" {
				cfg.Naming.Style = strings.ToLower(strings.TrimSpace(styleFlag))
			}
			if strictFlag {
				cfg.Taxonomy.Strict = true
			}
			if noCacheFlag {
				cfg.Cache.Enabled = false
			}
			format := cfg.Output.Format
			if formatFlag != "" {
				format = strings.ToLower(strings.TrimSpace(formatFlag))
			}

			client := llm.NewClient(llm.Config{
				APIKey:         cfg.LLM.APIKey,
				BaseURL:        cfg.LLM.BaseURL,
				Model:          cfg.LLM.Model,
				Referer:        cfg.LLM.Referer,
				Title:          cfg.LLM.Title,
				TimeoutSeconds: cfg.LLM.TimeoutSeconds,
			})

			var store *cache.Store
			if cfg.Cache.Enabled {
				store, err = cache.Open(cfg.Paths.CacheDir, logger)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
				defer store.Close()
			}

			vocab := ctx.vocabulary()
			cls := classifier.New(client, vocab, logger)

			var pipelineCache pipeline.Cache
			if store != nil {
				pipelineCache = store
			}
			p, err := pipeline.New(cfg, cls, pipelineCache, client.Model(), logger)
			if err != nil {
				return err
			}

			sources, err := expandSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return runClassify(cmd, p, sources, format)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "output", "o", "", "Output format: json, csv, tsv, or table")
	cmd.Flags().StringVar(&styleFlag, "style", "", "Naming style override: compact or descriptive")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on vocabulary terms instead of falling back to other")
	cmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Skip the classification cache")

	return cmd
}

// expandSources resolves classify arguments into concrete file paths.
// Directories are walked for supported documents, "-" reads newline-separated
// paths from stdin, and anything else passes through so per-file errors are
// reported alongside the rest of the batch.
func expandSources(stdin io.Reader, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if arg == "-" {
			scanner := bufio.NewScanner(stdin)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					files = append(files, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read paths from stdin: %w", err)
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			files = append(files, arg)
			continue
		}

		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !extract.Supported(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, walkErr)
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no classifiable documents found")
	}
	return files, nil
}

// runClassify processes each file in turn. A failed file is reported and
// skipped; the command fails if any file failed.
func runClassify(cmd *cobra.Command, p *pipeline.Pipeline, paths []string, format string) error {
	var results []pipeline.Result
	var failures int

	var writer output.Writer
	if format != "table" {
		var err error
		writer, err = output.NewWriter(format, cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	for _, path := range paths {
		result, err := p.ProcessFile(cmd.Context(), path)
		if err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}
		if writer != nil {
			if err := writer.Write(result); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		} else {
			results = append(results, result)
		}
	}

	if writer != nil {
		if err := writer.Close(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	} else if len(results) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderResultsTable(results))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(paths))
	}
	return nil
}

func renderResultsTable(results []pipeline.Result) string {
	headers := []string{"Source", "Domain", "Category", "Doctype", "Suggested Path", "Cache"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		cacheMark := ""
		if r.CacheHit {
			cacheMark = "hit"
		}
		rows = append(rows, []string{
			r.Source, r.Domain, r.Category, r.Doctype, r.Path.FullPath, cacheMark,
		})
	}
	return renderTable(headers, rows)
}
