package naming

// Metadata is the canonical form of a classified document: every field is a
// lowercase slug restricted to [a-z0-9_-] once canonicalized. Values are
// copied in and never mutated; the zero value of optional fields (Subject,
// Date, Version) means "absent".
type Metadata struct {
	Domain   string
	Category string
	Doctype  string
	Vendor   string
	Subject  string
	Date     string
	Version  string
}
