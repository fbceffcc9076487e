package naming

import (
	"regexp"
	"strings"
)

// DescriptiveStyle names files so they stay meaningful outside the archive
// hierarchy: doctype and vendor are mandatory, subject, date, and version are
// appended when present.
//
// Filename shape: doctype_vendor[_subject][_YYYY[MM[DD]]][_vNN|_final|_draft].ext
type DescriptiveStyle struct{}

func (DescriptiveStyle) Name() string { return "descriptive" }

func (DescriptiveStyle) AllowedPattern() *regexp.Regexp { return allowedPattern }

func (DescriptiveStyle) FolderComponents(meta Metadata) ([]string, error) {
	return folderComponents(meta)
}

func (s DescriptiveStyle) Filename(meta Metadata, ext string) (string, error) {
	if err := ensureAllowed(meta.Doctype, "doctype"); err != nil {
		return "", err
	}
	if err := ValidateVendor(meta.Vendor); err != nil {
		return "", err
	}
	if err := ensureAllowed(meta.Vendor, "vendor"); err != nil {
		return "", err
	}

	parts := []string{meta.Doctype, meta.Vendor}
	if meta.Subject != "" {
		if err := ensureAllowed(meta.Subject, "subject"); err != nil {
			return "", err
		}
		parts = append(parts, meta.Subject)
	}
	if meta.Date != "" {
		if err := validateDate(meta.Date, s.Name()); err != nil {
			return "", err
		}
		parts = append(parts, meta.Date)
	}
	if meta.Version != "" {
		if err := validateVersion(meta.Version, s.Name()); err != nil {
			return "", err
		}
		parts = append(parts, meta.Version)
	}
	return strings.Join(parts, "_") + ext, nil
}
