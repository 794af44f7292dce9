// Package textutil provides text processing utilities for repairing export
// text and preparing it for HTML pages.
//
// The primary use cases are:
//   - Repairing mojibake in strings an export wrote as UTF-8 read back as
//     Latin-1
//   - Escaping text for HTML idempotently, leaving existing character
//     references intact
//   - Wrapping bare URLs in anchor tags
//   - Rendering Unix timestamps in the archive's date formats
//
// All functions are pure. Input that cannot be improved is returned
// unchanged rather than reported as an error.
package textutil
