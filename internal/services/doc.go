// Package services defines the shared error taxonomy and context helpers used
// across the classification pipeline.
//
// Errors are tagged with sentinel markers (ErrValidation, ErrConfiguration,
// ErrTaxonomy, ErrExternalTool, ErrTransient) via Wrap so callers can classify
// failures with errors.Is without parsing messages. Context helpers thread a
// request ID and source path through pipeline stages for log correlation.
package services
