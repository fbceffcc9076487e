package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts a lowercase slug to Title_Case_With_Underscores:
// "home_improvement" becomes "Home_Improvement". Runs of underscores
// collapse to a single separator.
func TitleCase(slug string) string {
	if slug == "" {
		return slug
	}
	caser := cases.Title(language.Und)
	words := make([]string, 0, strings.Count(slug, "_")+1)
	for _, word := range strings.Split(slug, "_") {
		if word == "" {
			continue
		}
		words = append(words, caser.String(word))
	}
	return strings.Join(words, "_")
}

// irregularPlurals maps doctypes whose plural folder name does not follow the
// suffix rules. Keys are canonical lowercase slugs; values are final folder
// segments.
var irregularPlurals = map[string]string{
	"policy": "Policies",
	"1099":   "1099s",
	"1040":   "1040s",
	"w2":     "W2s",
}

// Pluralize converts a doctype slug into its title-cased plural folder name.
// Container folders use plural forms: "receipt" becomes "Receipts",
// "lab_results" stays "Lab_Results".
func Pluralize(doctype string) string {
	if plural, ok := irregularPlurals[strings.ToLower(doctype)]; ok {
		return plural
	}

	formatted := TitleCase(doctype)

	// Already plural: ends in "s" but not in a sibilant cluster.
	if strings.HasSuffix(formatted, "s") &&
		!strings.HasSuffix(formatted, "ss") &&
		!strings.HasSuffix(formatted, "es") &&
		!strings.HasSuffix(formatted, "xs") &&
		!strings.HasSuffix(formatted, "zs") {
		return formatted
	}
	// Consonant + y: "Proxy" -> "Proxies".
	if strings.HasSuffix(formatted, "y") && len(formatted) > 1 &&
		!strings.ContainsRune("aeiou", rune(formatted[len(formatted)-2])) {
		return formatted[:len(formatted)-1] + "ies"
	}
	// Sibilant endings take "es".
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(formatted, suffix) {
			return formatted + "es"
		}
	}
	return formatted + "s"
}
