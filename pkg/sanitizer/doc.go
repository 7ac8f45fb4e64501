// Package sanitizer normalizes reservation input before validation and
// storage.
//
// All functions are idempotent - applying them twice produces the same
// result. Invalid input is handled gracefully, typically by returning the
// value unchanged or an empty result rather than an error.
//
// Normalization includes:
//   - Phone numbers: Korean mobile numbers formatted to 010-XXXX-XXXX
//   - Strings: collapse internal whitespace, trim leading/trailing spaces
//   - Slices: drop empties and duplicates while preserving order
package sanitizer
