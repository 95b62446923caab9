// Package kernel contains shared value objects used across the domain model.
// Currently this is the UUID identifier wrapper, which enforces construction
// through factory functions so zero-value identifiers never leak into
// aggregates.
package kernel
