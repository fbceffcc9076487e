package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"docket/internal/logging"
	"docket/internal/services"
	"docket/internal/services/llm"
	"docket/internal/taxonomy"
)

// Completer issues a JSON-only completion request. *llm.Client satisfies it.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RawClassification is the model's verdict for a single document before
// vocabulary resolution.
type RawClassification struct {
	Domain   string `json:"domain"`
	Category string `json:"category"`
	Doctype  string `json:"doctype"`
	Vendor   string `json:"vendor"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
}

// Classifier extracts document metadata using an LLM.
type Classifier struct {
	client Completer
	vocab  *taxonomy.Vocabulary
	logger *slog.Logger
}

// New constructs a classifier bound to a vocabulary. A nil logger disables
// logging.
func New(client Completer, vocab *taxonomy.Vocabulary, logger *slog.Logger) *Classifier {
	if vocab == nil {
		vocab = taxonomy.Active()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Classifier{
		client: client,
		vocab:  vocab,
		logger: logging.NewComponentLogger(logger, "classifier"),
	}
}

// Classify analyzes document text and returns raw metadata. Vendor and
// subject values are cleaned deterministically; domain, category, and
// doctype are left for vocabulary resolution by the caller.
func (c *Classifier) Classify(ctx context.Context, content, filename string) (RawClassification, error) {
	var empty RawClassification
	content = strings.TrimSpace(content)
	if content == "" {
		return empty, services.Wrap(services.ErrValidation, "classifier", "classify", "document content is empty", nil)
	}

	logger := logging.WithContext(ctx, c.logger)
	logger.Debug("classifying document",
		logging.String("filename", filename),
		logging.Int("content_length", len(content)))

	payload, err := c.client.CompleteJSON(ctx, c.systemPrompt(), userPrompt(content, filename))
	if err != nil {
		return empty, services.Wrap(services.ErrTransient, "classifier", "classify", "completion request failed", err)
	}

	var raw RawClassification
	if err := llm.DecodeJSON(payload, &raw); err != nil {
		return empty, services.Wrap(services.ErrTransient, "classifier", "classify",
			fmt.Sprintf("malformed classification payload for %s", filename), err)
	}

	raw.Domain = strings.TrimSpace(raw.Domain)
	raw.Category = strings.TrimSpace(raw.Category)
	raw.Doctype = strings.TrimSpace(raw.Doctype)
	raw.Vendor = NormalizeVendor(raw.Vendor)
	raw.Subject = NormalizeSubject(raw.Subject)
	raw.Date = normalizeDate(raw.Date)

	logger.Debug("classification complete",
		logging.String("filename", filename),
		logging.String("domain", raw.Domain),
		logging.String("category", raw.Category),
		logging.String("doctype", raw.Doctype),
		logging.String("vendor", raw.Vendor))

	return raw, nil
}
