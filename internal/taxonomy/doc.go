// Package taxonomy holds the canonical vocabulary for the archive hierarchy
// and resolves free-form classifier output into it.
//
// A Vocabulary maps domains to category sets, carries a global doctype set,
// and keeps three alias tables (domain, domain-scoped category, doctype).
// Resolution is pure lookup: normalize the token, check direct membership,
// then consult the alias table. Resolvers never return errors; absence of a
// value is the only signal, and the pipeline decides between strict failure
// and fallback substitution.
//
// The process-wide vocabulary is reached through Active(). It is built once
// (built-in defaults, optionally replaced wholesale by an external override
// file) and never mutated afterward; replacing it is an atomic pointer swap
// via Activate.
package taxonomy
