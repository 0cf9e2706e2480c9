// Package format holds the small display helpers used across the client:
// countdown timers, remaining-time strings, digit grouping, suffixed numbers
// (K, M, B, T, Q) and snake-casing of item names.
//
// Every function is pure and safe for concurrent use.
package format
