// Package piiscan is the deterministic detector for sensitive substrings in
// question text.
//
// Detection is pattern-based: email-like tokens (local-part@domain shape),
// phone-like digit runs with optional separators, and card-like digit runs
// of 13-19 digits confirmed with a Luhn checksum to reduce false positives.
//
// Scan is a pure function. It never fails; unmatched text yields an empty
// flag list, not an error. The package also exposes the scanner as a tool
// definition (name, description, JSON Schema) so the generation step can
// invoke it mid-reasoning.
package piiscan
