// Package editor implements the parameter editor state: a list of
// (paramId, value) pairs seeded from a model, updated on input change, and
// read back through Snapshot. Lookups are first-match and total; writes
// replace the first matching entry or append.
package editor
