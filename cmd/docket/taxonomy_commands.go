package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/taxonomy"
)

func newTaxonomyCommand(ctx *commandContext) *cobra.Command {
	taxonomyCmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect the classification vocabulary",
	}

	taxonomyCmd.AddCommand(newTaxonomyShowCommand(ctx))
	taxonomyCmd.AddCommand(newTaxonomyResolveCommand(ctx))

	return taxonomyCmd
}

func newTaxonomyShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the vocabulary's domains, categories, and document types",
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab := ctx.vocabulary()

			if jsonFlag {
				type domainView struct {
					Name       string   `json:"name"`
					Categories []string `json:"categories"`
				}
				view := struct {
					Name     string       `json:"name"`
					Domains  []domainView `json:"domains"`
					Doctypes []string     `json:"doctypes"`
				}{Name: vocab.Name, Doctypes: vocab.DoctypeNames()}
				for _, domain := range vocab.DomainNames() {
					view.Domains = append(view.Domains, domainView{
						Name:       domain,
						Categories: vocab.CategoryNames(domain),
					})
				}
				return writeJSON(cmd.OutOrStdout(), view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vocabulary: %s\n\n", vocab.Name)

			rows := make([][]string, 0)
			for _, domain := range vocab.DomainNames() {
				rows = append(rows, []string{domain, strings.Join(vocab.CategoryNames(domain), ", ")})
			}
			fmt.Fprintln(out, renderTable([]string{"Domain", "Categories"}, rows))
			fmt.Fprintf(out, "\nDocument types: %s\n", strings.Join(vocab.DoctypeNames(), ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the vocabulary as JSON")
	return cmd
}

func newTaxonomyResolveCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "resolve TERM",
		Short: "Resolve a raw term against the vocabulary",
		Long: `Resolve reports how a raw term maps onto the vocabulary. Without --domain
the term is checked as a domain and as a document type; with --domain it is
also checked as a category of that domain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab := ctx.vocabulary()
			term := args[0]
			out := cmd.OutOrStdout()

			found := false
			if canonical, ok := vocab.ResolveDomain(term); ok {
				fmt.Fprintf(out, "domain: %s\n", canonical)
				found = true
			}
			if domainFlag != "" {
				if canonical, ok := vocab.ResolveCategory(domainFlag, term); ok {
					fmt.Fprintf(out, "category (%s): %s\n", taxonomy.NormalizeToken(domainFlag), canonical)
					found = true
				}
			}
			if canonical, ok := vocab.ResolveDoctype(term); ok {
				fmt.Fprintf(out, "doctype: %s\n", canonical)
				found = true
			}

			if !found {
				return fmt.Errorf("%q does not resolve against vocabulary %s", term, vocab.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&domainFlag, "domain", "", "Domain to resolve the term against as a category")
	return cmd
}
