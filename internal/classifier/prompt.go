package classifier

import (
	"fmt"
	"strings"
)

// systemPrompt renders the active vocabulary into the classification
// instruction so the model only proposes terms the resolver can accept.
func (c *Classifier) systemPrompt() string {
	var b strings.Builder
	b.WriteString(`You are a document classification assistant for a personal archive.
Analyze the document text and respond with a single JSON object containing
exactly these keys: domain, category, doctype, vendor, subject, date.

Rules:
- domain must be one of the listed domains.
- category must be one of the categories listed for the chosen domain.
- doctype must be one of the listed document types.
- vendor is the issuing organization or person, as written in the document.
- subject is a short phrase (1-3 words) describing the document's purpose.
- date is the most relevant date in YYYYMMDD form; use YYYYMM or YYYY when
  the document is less precise, or an empty string when no date appears.
- Respond with JSON only, no prose.

`)

	b.WriteString("Domains and their categories:\n")
	for _, domain := range c.vocab.DomainNames() {
		fmt.Fprintf(&b, "- %s: %s\n", domain, strings.Join(c.vocab.CategoryNames(domain), ", "))
	}
	b.WriteString("\nDocument types:\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(c.vocab.DoctypeNames(), ", "))

	return b.String()
}

func userPrompt(content, filename string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Filename: %s\n\n", filename)
	b.WriteString("Document text:\n")
	b.WriteString(content)
	return b.String()
}
