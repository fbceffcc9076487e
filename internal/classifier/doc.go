// Package classifier turns extracted document text into raw metadata using
// an LLM, constrained to the active taxonomy vocabulary. Vendor and subject
// values are cleaned deterministically after the model responds; mapping
// domain, category, and doctype onto canonical terms is the pipeline's job.
package classifier
