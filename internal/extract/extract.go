package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"docket/internal/services"
)

// DefaultMaxBytes caps how much text is read from a document when the
// caller does not specify a limit.
const DefaultMaxBytes = 64 * 1024

var textExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
	".csv": {},
	".log": {},
}

// Extractor reads document text for classification.
type Extractor struct {
	pdftotextBinary string
	maxBytes        int
}

// New constructs an extractor. binary names the pdftotext executable;
// maxBytes caps the extracted text (0 uses DefaultMaxBytes).
func New(binary string, maxBytes int) *Extractor {
	if strings.TrimSpace(binary) == "" {
		binary = "pdftotext"
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{pdftotextBinary: binary, maxBytes: maxBytes}
}

// Supported reports whether the extractor can read the file type.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return true
	}
	_, ok := textExtensions[ext]
	return ok
}

// Text returns the document's text content, truncated to the configured
// byte limit. PDF files are converted with pdftotext; plain text formats
// are read directly.
func (e *Extractor) Text(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return e.pdfText(ctx, path)
	default:
		if _, ok := textExtensions[ext]; !ok {
			return "", services.Wrap(services.ErrValidation, "extract", "text",
				fmt.Sprintf("unsupported file type %q", ext), nil)
		}
		return e.plainText(path)
	}
}

func (e *Extractor) plainText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "extract", "text", "open document", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(e.maxBytes)))
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "extract", "text", "read document", err)
	}
	return string(data), nil
}

func (e *Extractor) pdfText(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", services.Wrap(services.ErrNotFound, "extract", "text", "stat document", err)
	}

	// "-" writes the extracted text to stdout.
	cmd := exec.CommandContext(ctx, e.pdftotextBinary, "-layout", path, "-") //nolint:gosec
	var out strings.Builder
	var errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(errOut.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", services.Wrap(services.ErrExternalTool, "extract", "pdftotext", detail, err)
	}

	text := out.String()
	if len(text) > e.maxBytes {
		text = text[:e.maxBytes]
	}
	return text, nil
}
