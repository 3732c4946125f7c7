// Package types holds the shared, dependency-free vocabulary of hexkit:
// typed errors with stable categories so that front ends can branch on
// intent (retry a save, clamp a range, reopen a file) rather than on text.
//
// This package has no dependencies beyond the standard library.
package types
