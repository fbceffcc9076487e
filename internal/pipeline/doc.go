// Package pipeline orchestrates document processing: extract text, classify
// it (or serve the classification from cache), resolve the metadata against
// the taxonomy vocabulary, and construct the suggested archive path. Source
// files are read-only throughout.
package pipeline
