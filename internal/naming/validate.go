package naming

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"docket/internal/services"
)

// allowedPattern is the character set every emitted component must satisfy.
// The check is case-insensitive because folder components are title-cased.
var allowedPattern = regexp.MustCompile(`(?i)^[a-z0-9_-]+$`)

// datePattern accepts year, year-month, or year-month-day digit runs.
var datePattern = regexp.MustCompile(`^\d{4}(\d{2}(\d{2})?)?$`)

// versionPattern accepts vNN, final, or draft.
var versionPattern = regexp.MustCompile(`^(v\d{2}|final|draft)$`)

// reservedVendors are placeholder values a classifier emits when it cannot
// determine a vendor. Building a path with one is an input error, never a
// silent default.
var reservedVendors = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
	"na":      {},
	"none":    {},
	"generic": {},
}

// ValidateVendor rejects empty and reserved placeholder vendor names.
func ValidateVendor(vendor string) error {
	trimmed := strings.ToLower(strings.TrimSpace(vendor))
	if trimmed == "" {
		return services.Wrap(services.ErrValidation, "naming", "vendor", "vendor name is empty", nil)
	}
	if _, reserved := reservedVendors[trimmed]; reserved {
		return services.Wrap(services.ErrValidation, "naming", "vendor",
			fmt.Sprintf("unknown vendor %q: a concrete vendor is required", vendor), nil)
	}
	return nil
}

// ensureAllowed verifies a component matches the allowed character set and
// names the offending characters when it does not.
func ensureAllowed(component, field string) error {
	if component == "" {
		return services.Wrap(services.ErrValidation, "naming", field, "missing required field", nil)
	}
	if allowedPattern.MatchString(component) {
		return nil
	}
	seen := map[rune]struct{}{}
	var offending []string
	for _, r := range component {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		offending = append(offending, fmt.Sprintf("%q", r))
	}
	sort.Strings(offending)
	return services.Wrap(services.ErrValidation, "naming", field,
		fmt.Sprintf("invalid characters %s in %q: only a-z, 0-9, underscore, and hyphen are allowed",
			strings.Join(offending, " "), component), nil)
}

func validateDate(date, styleName string) error {
	if datePattern.MatchString(date) {
		return nil
	}
	return services.Wrap(services.ErrValidation, "naming", styleName,
		fmt.Sprintf("invalid date %q: expected YYYY, YYYYMM, or YYYYMMDD", date), nil)
}

func validateVersion(version, styleName string) error {
	if versionPattern.MatchString(version) {
		return nil
	}
	return services.Wrap(services.ErrValidation, "naming", styleName,
		fmt.Sprintf("invalid version %q: expected vNN, final, or draft", version), nil)
}
