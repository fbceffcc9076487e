package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/pathbuild"
	"docket/internal/services"
)

func newPathCommand(ctx *commandContext) *cobra.Command {
	var req pathbuild.Request
	var styleFlag string
	var strictFlag bool
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Construct an archive path from metadata without the LLM",
		Long: `Path runs the deterministic half of the pipeline: the supplied metadata
is resolved against the taxonomy vocabulary and turned into a directory
path and filename. Useful for scripting and for previewing naming styles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			style := cfg.Naming.Style
			if styleFlag != "" {
				style = strings.ToLower(strings.TrimSpace(styleFlag))
			}

			vocab := ctx.vocabulary()
			domain, ok := vocab.ResolveDomain(req.Domain)
			if !ok {
				return services.Wrap(services.ErrTaxonomy, "path", "resolve",
					fmt.Sprintf("domain %q is not in the vocabulary", req.Domain), nil)
			}
			category, ok := vocab.ResolveCategory(req.Domain, req.Category)
			if !ok {
				if strictFlag || cfg.Taxonomy.Strict {
					return services.Wrap(services.ErrTaxonomy, "path", "resolve",
						fmt.Sprintf("category %q is not in the vocabulary for domain %q", req.Category, domain), nil)
				}
				category = "other"
			}
			doctype, ok := vocab.ResolveDoctype(req.Doctype)
			if !ok {
				if strictFlag || cfg.Taxonomy.Strict {
					return services.Wrap(services.ErrTaxonomy, "path", "resolve",
						fmt.Sprintf("document type %q is not in the vocabulary", req.Doctype), nil)
				}
				doctype = "other"
			}
			req.Domain = domain
			req.Category = category
			req.Doctype = doctype

			builder, err := pathbuild.New(pathbuild.Options{
				Style:             style,
				MaxHierarchyDepth: cfg.Naming.MaxHierarchyDepth,
				MaxPathLength:     cfg.Naming.MaxPathLength,
			})
			if err != nil {
				return err
			}

			meta, err := builder.Build(req)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), meta)
			}
			fmt.Fprintln(cmd.OutOrStdout(), meta.FullPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Domain, "domain", "", "Document domain (required)")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category within the domain (required)")
	cmd.Flags().StringVar(&req.Doctype, "doctype", "", "Document type (required)")
	cmd.Flags().StringVar(&req.Vendor, "vendor", "", "Vendor or issuer (required)")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "Short subject (descriptive style only)")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date as YYYYMMDD, YYYYMM, or YYYY")
	cmd.Flags().StringVar(&req.Version, "version", "", "Version marker: vNN, final, or draft")
	cmd.Flags().StringVar(&req.Extension, "ext", "pdf", "File extension for the generated filename")
	cmd.Flags().StringVar(&styleFlag, "style", "", "Naming style override: compact or descriptive")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on vocabulary terms instead of falling back to other")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the path components as JSON")

	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("doctype")
	_ = cmd.MarkFlagRequired("vendor")

	return cmd
}
