package main

import (
	"encoding/json"
	"io"
)

// writeJSON renders v as indented JSON for the --json command flags. Batch
// classify output goes through internal/output instead, which emits one
// compact object per line.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
