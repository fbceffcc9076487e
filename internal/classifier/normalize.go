package classifier

import (
	"regexp"
	"strings"
)

var (
	disallowedChars     = regexp.MustCompile(`[^a-z0-9_-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
	nonDigits           = regexp.MustCompile(`[^0-9]`)
)

// Domain extensions commonly echoed back by the model when a vendor is best
// known by its website.
var domainExtensions = []string{
	".com", ".net", ".org", ".edu", ".gov", ".mil", ".co.uk", ".co", ".io", ".ai",
}

var fillerWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "of": {}, "the": {}, "to": {},
}

// NormalizeVendor cleans a raw vendor name into a filename-safe token:
// "www.Amazon.com" becomes "amazon", "Bank & Trust Co." becomes
// "bank_trust_co".
func NormalizeVendor(vendor string) string {
	vendor = strings.TrimSpace(vendor)
	if vendor == "" {
		return ""
	}

	if len(vendor) > 4 && strings.EqualFold(vendor[:4], "www.") {
		vendor = vendor[4:]
	}
	lower := strings.ToLower(vendor)
	for _, ext := range domainExtensions {
		if strings.HasSuffix(lower, ext) {
			vendor = vendor[:len(vendor)-len(ext)]
			break
		}
	}

	vendor = strings.ToLower(vendor)
	vendor = strings.ReplaceAll(vendor, " ", "_")
	vendor = disallowedChars.ReplaceAllString(vendor, "")
	vendor = repeatedUnderscores.ReplaceAllString(vendor, "_")
	return strings.Trim(vendor, "_")
}

// NormalizeSubject cleans a raw subject phrase into a filename-safe token,
// dropping filler words: "explanation of benefits" becomes
// "explanation_benefits".
func NormalizeSubject(subject string) string {
	subject = strings.ToLower(strings.TrimSpace(subject))
	if subject == "" {
		return ""
	}

	subject = strings.ReplaceAll(subject, " ", "_")
	subject = disallowedChars.ReplaceAllString(subject, "")

	words := strings.Split(subject, "_")
	kept := words[:0]
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, filler := fillerWords[word]; filler {
			continue
		}
		kept = append(kept, word)
	}
	subject = strings.Join(kept, "_")
	subject = repeatedUnderscores.ReplaceAllString(subject, "_")
	return strings.Trim(subject, "_")
}

// normalizeDate strips separators the model may leave in ("2024-01-15"
// becomes "20240115"). Validation happens at path construction.
func normalizeDate(date string) string {
	return nonDigits.ReplaceAllString(strings.TrimSpace(date), "")
}
