// Package preflight validates docket's runtime environment: directory
// access, disk headroom, the pdftotext binary, an optional vocabulary
// override, and LLM API reachability.
package preflight
