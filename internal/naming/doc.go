// Package naming turns canonical document metadata into folder components and
// filenames according to a selected naming style.
//
// Styles are a small closed set of stateless values (compact, descriptive)
// selected by name through Resolve. A style owns only style-intrinsic rules:
// which fields appear in the filename, field ordering, and the allowed
// character set of emitted components. Cross-cutting structural checks (path
// depth, total length, single period) belong to the path builder.
//
// New styles are added by implementing Style and registering the value in the
// registry, never by layering on an existing style.
package naming
