// SPDX-License-Identifier: MPL-2.0

// Package manifest provides types and parsing for typst.toml package
// manifests.
//
// The identity fields of a manifest (name, authors, homepage, repository,
// license) are constrained string grammars. Each grammar is represented by
// an opaque type whose only constructor is its validating Parse function, so
// holding a value of one of these types guarantees the text satisfies its
// grammar. Decoding a manifest re-runs the same validation on every field.
//
// Parsing is strict: unknown keys anywhere in the document are rejected,
// with the exception of the [tool] table, which is an opaque pass-through
// for third-party configuration.
package manifest
