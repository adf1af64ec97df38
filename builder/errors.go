// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generate MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ErrTooFewVertices indicates that the node count is smaller than the allowed minimum.
// It wraps core.ErrInvalidArgument, so errors.Is matches both.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidArgument)

// ErrNeedRandSource indicates that Generate was called without WithSource/WithSeed.
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrOptionViolation indicates that a resolved option produced an unusable
// configuration at build time (e.g. an ID scheme that emits duplicate or empty labels).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a formatted message with the method context and
// wraps sentinel so errors.Is keeps working.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
