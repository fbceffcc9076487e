package pathbuild

import (
	"fmt"
	"strings"

	"docket/internal/naming"
	"docket/internal/services"
)

const (
	// DefaultMaxHierarchyDepth bounds the number of folder segments.
	DefaultMaxHierarchyDepth = 5
	// DefaultMaxPathLength bounds the full path in characters.
	DefaultMaxPathLength = 200
)

// Options configure a Builder. Zero values fall back to defaults; Style is
// required.
type Options struct {
	Style             string
	MaxHierarchyDepth int
	MaxPathLength     int
}

// Request carries the raw field values for one path build. Fields are
// normalized (trimmed, lowercased) before use.
type Request struct {
	Domain    string
	Category  string
	Doctype   string
	Vendor    string
	Subject   string
	Date      string
	Extension string
	Version   string
}

// PathMetadata is the immutable result of a successful build.
type PathMetadata struct {
	// DirectoryPath is the folder components joined by "/" with a trailing "/".
	DirectoryPath string `json:"directory_path"`
	// Filename is the basename plus extension, containing exactly one period.
	Filename string `json:"filename"`
	// FullPath is DirectoryPath + Filename.
	FullPath string `json:"full_path"`
}

// Builder produces archive paths for one configured naming style.
type Builder struct {
	style    naming.Style
	maxDepth int
	maxPath  int
}

// New resolves the configured style and returns a ready Builder. An unknown
// style name fails here, before any build is attempted.
func New(opts Options) (*Builder, error) {
	style, err := naming.Resolve(opts.Style)
	if err != nil {
		return nil, err
	}
	maxDepth := opts.MaxHierarchyDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxHierarchyDepth
	}
	maxPath := opts.MaxPathLength
	if maxPath <= 0 {
		maxPath = DefaultMaxPathLength
	}
	return &Builder{style: style, maxDepth: maxDepth, maxPath: maxPath}, nil
}

// Style returns the name of the active naming style.
func (b *Builder) Style() string { return b.style.Name() }

// Build constructs the directory path and filename for the request, enforcing
// every structural invariant. On length overflow it retries once with a
// truncated subject, then fails hard; required fields are never dropped.
func (b *Builder) Build(req Request) (PathMetadata, error) {
	var empty PathMetadata

	meta := canonicalize(req)
	ext := normalizeExtension(req.Extension)

	if err := naming.ValidateVendor(meta.Vendor); err != nil {
		return empty, err
	}

	folders, err := b.style.FolderComponents(meta)
	if err != nil {
		return empty, err
	}
	directory := strings.Join(folders, "/") + "/"

	if err := validateNoPeriodsInFolders(directory); err != nil {
		return empty, err
	}
	if err := validateHierarchyDepth(directory, b.maxDepth); err != nil {
		return empty, err
	}

	filename, err := b.style.Filename(meta, ext)
	if err != nil {
		return empty, err
	}
	if err := validateSinglePeriod(filename); err != nil {
		return empty, err
	}

	fullPath := directory + filename
	if len(fullPath) > b.maxPath {
		truncated, ok := truncateSubject(meta.Subject, len(fullPath)-b.maxPath)
		if !ok {
			return empty, pathTooLong(fullPath, b.maxPath)
		}
		meta.Subject = truncated
		filename, err = b.style.Filename(meta, ext)
		if err != nil {
			return empty, err
		}
		if err := validateSinglePeriod(filename); err != nil {
			return empty, err
		}
		fullPath = directory + filename
		if len(fullPath) > b.maxPath {
			return empty, pathTooLong(fullPath, b.maxPath)
		}
	}

	return PathMetadata{
		DirectoryPath: directory,
		Filename:      filename,
		FullPath:      fullPath,
	}, nil
}

func canonicalize(req Request) naming.Metadata {
	return naming.Metadata{
		Domain:   strings.ToLower(strings.TrimSpace(req.Domain)),
		Category: strings.ToLower(strings.TrimSpace(req.Category)),
		Doctype:  strings.ToLower(strings.TrimSpace(req.Doctype)),
		Vendor:   strings.ToLower(strings.TrimSpace(req.Vendor)),
		Subject:  strings.ToLower(strings.TrimSpace(req.Subject)),
		Date:     strings.TrimSpace(req.Date),
		Version:  strings.ToLower(strings.TrimSpace(req.Version)),
	}
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// truncateSubject shortens subject by excess characters, trimming dangling
// separators. It reports false when the subject cannot absorb the excess;
// truncation is attempted at most once and never removes the subject
// entirely.
func truncateSubject(subject string, excess int) (string, bool) {
	if subject == "" || excess <= 0 {
		return "", false
	}
	keep := len(subject) - excess
	if keep < 1 {
		return "", false
	}
	truncated := strings.TrimRight(subject[:keep], "_-")
	if truncated == "" {
		return "", false
	}
	return truncated, true
}

func pathTooLong(fullPath string, limit int) error {
	return services.Wrap(services.ErrValidation, "pathbuild", "length",
		fmt.Sprintf("path too long: %d chars exceeds maximum %d: %s", len(fullPath), limit, fullPath), nil)
}

func validateNoPeriodsInFolders(directory string) error {
	for _, segment := range strings.Split(strings.TrimSuffix(directory, "/"), "/") {
		if strings.Contains(segment, ".") {
			return services.Wrap(services.ErrValidation, "pathbuild", "folders",
				fmt.Sprintf("folder name %q contains a period", segment), nil)
		}
	}
	return nil
}

func validateHierarchyDepth(directory string, maxDepth int) error {
	depth := len(strings.Split(strings.TrimSuffix(directory, "/"), "/"))
	if depth > maxDepth {
		return services.Wrap(services.ErrValidation, "pathbuild", "depth",
			fmt.Sprintf("hierarchy depth %d exceeds maximum %d", depth, maxDepth), nil)
	}
	return nil
}

func validateSinglePeriod(filename string) error {
	if strings.Count(filename, ".") != 1 {
		return services.Wrap(services.ErrValidation, "pathbuild", "filename",
			fmt.Sprintf("filename %q must contain exactly one period", filename), nil)
	}
	return nil
}
