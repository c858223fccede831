// Package token decides when TOON scalars and keys may appear bare and
// how they are quoted and escaped when they may not.
package token
