// Package output serializes processing results as NDJSON, CSV, or TSV for
// scripting against docket's classify command.
package output
