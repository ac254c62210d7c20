// Package utils holds small helpers shared by the phishtriage packages.
package utils

import (
	"github.com/oklog/ulid/v2"
)

// EqualFoldASCII compares two strings case-insensitively, folding only
// ASCII letters.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// GenerateID returns a new lexically sortable identifier (ULID).
func GenerateID() string {
	return ulid.Make().String()
}
