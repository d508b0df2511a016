// Package store persists decoded programs to a SQLite catalog.
//
// The catalog is a convenience for the CLI: it records which programs have
// been decoded, their instruction kinds, and the canonical cache keys, so
// they can be listed and inspected later. The decode layer itself never
// touches storage.
package store
