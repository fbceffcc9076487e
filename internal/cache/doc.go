// Package cache persists classification results in SQLite so reprocessing a
// document skips the LLM round trip. Entries are keyed by content hash,
// model, and vocabulary name.
package cache
