package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"docket/internal/pipeline"
)

// Writer emits processing results in a machine-readable format.
type Writer interface {
	Write(result pipeline.Result) error
	Close() error
}

// Formats lists the formats NewWriter accepts.
func Formats() []string {
	return []string{"json", "csv", "tsv"}
}

// NewWriter returns a writer for the named format.
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch format {
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	case "csv":
		return newDelimitedWriter(w, ','), nil
	case "tsv":
		return newDelimitedWriter(w, '\t'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// jsonWriter emits one JSON object per line (NDJSON).
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(result pipeline.Result) error {
	return j.enc.Encode(result)
}

func (j *jsonWriter) Close() error { return nil }

var delimitedHeader = []string{
	"request_id", "source", "domain", "category", "doctype",
	"vendor", "subject", "date", "directory_path", "filename",
	"full_path", "cache_hit",
}

type delimitedWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func newDelimitedWriter(w io.Writer, comma rune) *delimitedWriter {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	return &delimitedWriter{w: cw}
}

func (d *delimitedWriter) Write(result pipeline.Result) error {
	if !d.wroteHeader {
		if err := d.w.Write(delimitedHeader); err != nil {
			return err
		}
		d.wroteHeader = true
	}
	return d.w.Write([]string{
		result.RequestID,
		result.Source,
		result.Domain,
		result.Category,
		result.Doctype,
		result.Vendor,
		result.Subject,
		result.Date,
		result.Path.DirectoryPath,
		result.Path.Filename,
		result.Path.FullPath,
		strconv.FormatBool(result.CacheHit),
	})
}

func (d *delimitedWriter) Close() error {
	d.w.Flush()
	return d.w.Error()
}
