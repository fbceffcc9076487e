// Package pathbuild deterministically constructs archive paths from canonical
// document metadata.
//
// The Builder is the single authority for cross-cutting structural rules: no
// periods in folder names, bounded hierarchy depth, exactly one period in the
// filename, and a total path length limit with a single subject-truncation
// attempt on overflow. Style-intrinsic rules (field ordering, character sets)
// live in the naming package.
//
// Builds are pure functions of their inputs. A Builder holds only immutable
// configuration, so concurrent Build calls need no synchronization, and
// identical inputs always produce byte-identical output.
package pathbuild
