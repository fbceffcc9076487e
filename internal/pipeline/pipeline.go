package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docket/internal/cache"
	"docket/internal/classifier"
	"docket/internal/config"
	"docket/internal/extract"
	"docket/internal/fileutil"
	"docket/internal/logging"
	"docket/internal/pathbuild"
	"docket/internal/services"
	"docket/internal/taxonomy"
)

// Classifier produces raw metadata for document text. *classifier.Classifier
// satisfies it.
type Classifier interface {
	Classify(ctx context.Context, content, filename string) (classifier.RawClassification, error)
}

// Cache persists classification results between runs. *cache.Store satisfies
// it; a nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key cache.Key) (classifier.RawClassification, bool, error)
	Put(ctx context.Context, key cache.Key, raw classifier.RawClassification) error
}

// Result is the outcome of processing one document.
type Result struct {
	RequestID string `json:"request_id"`
	Source    string `json:"source"`

	Domain   string `json:"domain"`
	Category string `json:"category"`
	Doctype  string `json:"doctype"`
	Vendor   string `json:"vendor"`
	Subject  string `json:"subject,omitempty"`
	Date     string `json:"date,omitempty"`

	Path pathbuild.PathMetadata `json:"path"`

	CacheHit bool `json:"cache_hit"`
}

// Pipeline runs extract, classify, canonicalize, and path construction for
// individual documents.
type Pipeline struct {
	cfg        *config.Config
	vocab      *taxonomy.Vocabulary
	extractor  *extract.Extractor
	classifier Classifier
	cache      Cache
	builder    *pathbuild.Builder
	model      string
	logger     *slog.Logger
}

// New wires a pipeline from configuration. cacheStore may be nil to disable
// caching; model names the classifier for cache keying.
func New(cfg *config.Config, cls Classifier, cacheStore Cache, model string, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "new", "configuration required", nil)
	}
	if cls == nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "new", "classifier required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	vocab := taxonomy.Active()
	if cfg.Taxonomy.OverridePath != "" {
		if custom := taxonomy.TryLoad(cfg.Taxonomy.OverridePath); custom != nil {
			vocab = custom
		} else {
			logger.Warn("vocabulary override failed to load, using built-in defaults",
				logging.String("path", cfg.Taxonomy.OverridePath))
		}
	}

	builder, err := pathbuild.New(pathbuild.Options{
		Style:             cfg.Naming.Style,
		MaxHierarchyDepth: cfg.Naming.MaxHierarchyDepth,
		MaxPathLength:     cfg.Naming.MaxPathLength,
	})
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:        cfg,
		vocab:      vocab,
		extractor:  extract.New(cfg.PdftotextBinary(), cfg.Extraction.MaxBytes),
		classifier: cls,
		cache:      cacheStore,
		builder:    builder,
		model:      model,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Vocabulary returns the vocabulary the pipeline resolves against.
func (p *Pipeline) Vocabulary() *taxonomy.Vocabulary {
	return p.vocab
}

// ProcessFile classifies one document and constructs its archive path. The
// file itself is never moved or modified.
func (p *Pipeline) ProcessFile(ctx context.Context, sourcePath string) (Result, error) {
	started := time.Now()
	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)
	ctx = services.WithSourcePath(ctx, sourcePath)

	result := Result{RequestID: requestID, Source: sourcePath}
	logger := logging.WithContext(ctx, p.logger)

	if !fileutil.IsRegularFile(sourcePath) {
		return result, services.Wrap(services.ErrNotFound, "pipeline", "process",
			fmt.Sprintf("%s is not a regular file", sourcePath), nil)
	}
	if !extract.Supported(sourcePath) {
		return result, services.Wrap(services.ErrValidation, "pipeline", "process",
			fmt.Sprintf("unsupported file type %q", filepath.Ext(sourcePath)), nil)
	}

	raw, cacheHit, err := p.classify(ctx, sourcePath, logger)
	if err != nil {
		return result, err
	}
	result.CacheHit = cacheHit

	canonical, err := p.canonicalize(raw)
	if err != nil {
		return result, err
	}
	result.Domain = canonical.Domain
	result.Category = canonical.Category
	result.Doctype = canonical.Doctype
	result.Vendor = canonical.Vendor
	result.Subject = canonical.Subject
	result.Date = canonical.Date

	meta, err := p.builder.Build(pathbuild.Request{
		Domain:    canonical.Domain,
		Category:  canonical.Category,
		Doctype:   canonical.Doctype,
		Vendor:    canonical.Vendor,
		Subject:   canonical.Subject,
		Date:      canonical.Date,
		Version:   canonical.Version,
		Extension: filepath.Ext(sourcePath),
	})
	if err != nil {
		return result, err
	}
	result.Path = meta

	logger.Info("document processed",
		logging.String(logging.FieldEventType, "document_processed"),
		logging.String("domain", result.Domain),
		logging.String("doctype", result.Doctype),
		logging.String("suggested_path", meta.FullPath),
		logging.Bool("cache_hit", cacheHit),
		logging.Duration("duration", time.Since(started)))

	return result, nil
}

func (p *Pipeline) classify(ctx context.Context, sourcePath string, logger *slog.Logger) (classifier.RawClassification, bool, error) {
	var empty classifier.RawClassification

	var key cache.Key
	useCache := p.cache != nil && p.cfg.Cache.Enabled
	if useCache {
		hash, err := fileutil.ContentHash(sourcePath)
		if err != nil {
			return empty, false, services.Wrap(services.ErrTransient, "pipeline", "hash", "hash document", err)
		}
		key = cache.Key{ContentHash: hash, Model: p.model, Vocabulary: p.vocab.Name}
		if raw, found, err := p.cache.Get(ctx, key); err != nil {
			logger.Warn("cache lookup failed", logging.Error(err))
		} else if found {
			logger.Debug("classification served from cache")
			return raw, true, nil
		}
	}

	content, err := p.extractor.Text(ctx, sourcePath)
	if err != nil {
		return empty, false, err
	}
	if strings.TrimSpace(content) == "" {
		return empty, false, services.Wrap(services.ErrValidation, "pipeline", "extract",
			"document contains no extractable text", nil)
	}

	raw, err := p.classifier.Classify(ctx, content, filepath.Base(sourcePath))
	if err != nil {
		return empty, false, err
	}

	if useCache {
		if err := p.cache.Put(ctx, key, raw); err != nil {
			logger.Warn("cache write failed", logging.Error(err))
		}
	}
	return raw, false, nil
}

type canonicalMetadata struct {
	Domain   string
	Category string
	Doctype  string
	Vendor   string
	Subject  string
	Date     string
	Version  string
}

// canonicalize maps raw model output onto the vocabulary. The domain must
// resolve; an unknown category or doctype becomes "other" unless strict mode
// makes it a failure.
func (p *Pipeline) canonicalize(raw classifier.RawClassification) (canonicalMetadata, error) {
	var out canonicalMetadata

	domain, ok := p.vocab.ResolveDomain(raw.Domain)
	if !ok {
		return out, services.Wrap(services.ErrTaxonomy, "pipeline", "canonicalize",
			fmt.Sprintf("domain %q is not in the vocabulary", raw.Domain), nil)
	}
	out.Domain = domain

	category, ok := p.vocab.ResolveCategory(raw.Domain, raw.Category)
	if !ok {
		if p.cfg.Taxonomy.Strict {
			return out, services.Wrap(services.ErrTaxonomy, "pipeline", "canonicalize",
				fmt.Sprintf("category %q is not in the vocabulary for domain %q", raw.Category, domain), nil)
		}
		category = "other"
	}
	out.Category = category

	doctype, ok := p.vocab.ResolveDoctype(raw.Doctype)
	if !ok {
		if p.cfg.Taxonomy.Strict {
			return out, services.Wrap(services.ErrTaxonomy, "pipeline", "canonicalize",
				fmt.Sprintf("document type %q is not in the vocabulary", raw.Doctype), nil)
		}
		doctype = "other"
	}
	out.Doctype = doctype

	out.Vendor = raw.Vendor
	out.Subject = raw.Subject
	out.Date = raw.Date
	return out, nil
}
