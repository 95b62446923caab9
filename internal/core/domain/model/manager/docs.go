// Package manager provides the staff entity eligible for order assignment
// and the pool normalization rules: dedupe by identity, drop inactive
// accounts, and prefer manager-role accounts over the admin fallback.
package manager
