package naming

import "regexp"

// CompactStyle names files by vendor and date only: the folder hierarchy
// already says what the document is, so the filename identifies the instance.
// Subject is intentionally unused.
//
// Filename shape: vendor[_YYYY[MM[DD]]].ext
type CompactStyle struct{}

func (CompactStyle) Name() string { return "compact" }

func (CompactStyle) AllowedPattern() *regexp.Regexp { return allowedPattern }

func (CompactStyle) FolderComponents(meta Metadata) ([]string, error) {
	return folderComponents(meta)
}

func (s CompactStyle) Filename(meta Metadata, ext string) (string, error) {
	if err := ValidateVendor(meta.Vendor); err != nil {
		return "", err
	}
	if err := ensureAllowed(meta.Vendor, "vendor"); err != nil {
		return "", err
	}
	base := meta.Vendor
	if meta.Date != "" {
		if err := validateDate(meta.Date, s.Name()); err != nil {
			return "", err
		}
		base += "_" + meta.Date
	}
	return base + ext, nil
}
