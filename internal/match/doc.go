// Package match provides Levenshtein distance, case-style folding and the
// fuzzy candidate ranking used for "did you mean" hints in diagnostics.
package match
