// SPDX-License-Identifier: MIT
// Package: lvlsort/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w via builderErrorf.
//   • Constructors never panic; validation panics live in WithX only.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative sequence length.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrBadRange indicates that the configured minimum exceeds the maximum.
// Usage: if errors.Is(err, ErrBadRange) { /* swap or fix bounds */ }.
var ErrBadRange = errors.New("builder: invalid value range")

// ErrUnknownKind indicates that ParseKind or Build received a sequence kind
// it does not know.
var ErrUnknownKind = errors.New("builder: unknown sequence kind")

// builderErrorf wraps sentinel with the constructor name and a formatted
// detail: "<method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
