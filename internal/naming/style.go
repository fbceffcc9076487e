package naming

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"docket/internal/services"
)

// Style maps canonical metadata onto folder components and a filename. Styles
// are stateless values; the same style may serve any number of concurrent
// builds.
type Style interface {
	// Name returns the registry key for this style.
	Name() string
	// FolderComponents returns the ordered folder names, already cased for
	// the archive hierarchy and validated against AllowedPattern.
	FolderComponents(meta Metadata) ([]string, error)
	// Filename returns the basename plus extension for the document.
	Filename(meta Metadata, ext string) (string, error)
	// AllowedPattern reports the character set this style emits.
	AllowedPattern() *regexp.Regexp
}

var registry = map[string]Style{
	"compact":     CompactStyle{},
	"descriptive": DescriptiveStyle{},
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the style registered under name. Unknown names are a hard
// configuration error enumerating the valid set.
func Resolve(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if style, ok := registry[key]; ok {
		return style, nil
	}
	return nil, services.Wrap(services.ErrConfiguration, "naming", "style",
		fmt.Sprintf("unknown naming style %q: allowed styles are %s", name, strings.Join(Names(), ", ")), nil)
}

// folderComponents is shared by both built-in styles: both lay out the
// archive as Domain/Category/Doctypes (title-cased, doctype pluralized).
func folderComponents(meta Metadata) ([]string, error) {
	for field, value := range map[string]string{
		"domain":   meta.Domain,
		"category": meta.Category,
		"doctype":  meta.Doctype,
	} {
		if err := ensureAllowed(value, field); err != nil {
			return nil, err
		}
	}
	components := []string{
		TitleCase(meta.Domain),
		TitleCase(meta.Category),
		Pluralize(meta.Doctype),
	}
	for _, component := range components {
		if err := ensureAllowed(component, "folder"); err != nil {
			return nil, err
		}
	}
	return components, nil
}
