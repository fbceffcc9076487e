package taxonomy

import "strings"

// NormalizeToken prepares a raw value for vocabulary lookup: trim whitespace,
// lowercase, and replace spaces and hyphens with underscores. Empty input
// normalizes to the empty token.
func NormalizeToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return ""
	}
	token = strings.ReplaceAll(token, "-", "_")
	token = strings.ReplaceAll(token, " ", "_")
	return token
}

// ResolveDomain maps a raw domain string to its canonical slug. The second
// return is false when neither the domain set nor the alias table matches.
func (v *Vocabulary) ResolveDomain(raw string) (string, bool) {
	token := NormalizeToken(raw)
	if token == "" {
		return "", false
	}
	if _, ok := v.domainSet[token]; ok {
		return token, true
	}
	if canonical, ok := v.domainAliases[token]; ok {
		if _, known := v.domainSet[canonical]; known {
			return canonical, true
		}
	}
	return "", false
}

// ResolveCategory maps a raw category to its canonical slug within a domain.
// Categories are domain-scoped: the same raw string may resolve differently
// under different domains.
//
// The domain key falls back to its normalized raw token when domain
// resolution fails, so alias tables keyed on a canonical domain still match
// when the caller passes an alias spelling.
func (v *Vocabulary) ResolveCategory(domain, rawCategory string) (string, bool) {
	dom, ok := v.ResolveDomain(domain)
	if !ok {
		dom = NormalizeToken(domain)
	}
	if dom == "" {
		return "", false
	}

	token := NormalizeToken(rawCategory)
	if token == "" {
		return "", false
	}

	categories := v.categorySets[dom]
	if _, ok := categories[token]; ok {
		return token, true
	}
	if canonical, ok := v.categoryAliases[categoryKey{domain: dom, alias: token}]; ok {
		if _, known := categories[canonical]; known {
			return canonical, true
		}
	}
	return "", false
}

// ResolveDoctype maps a raw doctype string to its canonical slug.
func (v *Vocabulary) ResolveDoctype(raw string) (string, bool) {
	token := NormalizeToken(raw)
	if token == "" {
		return "", false
	}
	if _, ok := v.doctypeSet[token]; ok {
		return token, true
	}
	if canonical, ok := v.doctypeAliases[token]; ok {
		if _, known := v.doctypeSet[canonical]; known {
			return canonical, true
		}
	}
	return "", false
}

// ResolveDomain resolves against the process-wide vocabulary.
func ResolveDomain(raw string) (string, bool) {
	return Active().ResolveDomain(raw)
}

// ResolveCategory resolves against the process-wide vocabulary.
func ResolveCategory(domain, rawCategory string) (string, bool) {
	return Active().ResolveCategory(domain, rawCategory)
}

// ResolveDoctype resolves against the process-wide vocabulary.
func ResolveDoctype(raw string) (string, bool) {
	return Active().ResolveDoctype(raw)
}
