// Package gomap normalizes Go values into the canonical IR consumed by
// the TOON encoder. A fixed-priority chain of type handlers runs before
// a generic reflection fallback; the encoder itself never sees host
// types, non-finite floats, or unordered maps.
package gomap
