// Package assetgen converts a single asset module into the code fragment
// (or verbatim artifact) that the rest of the bundle references.
//
// This file defines the configuration error category. Configuration errors
// are never retried; they abort generation and surface to the end user as
// a build failure with a remediation hint. Use errors.Is(err, ErrConfig)
// for typed assertions rather than string matching.
package assetgen

import "errors"

// ErrConfig is the sentinel for asset generator configuration errors.
var ErrConfig = errors.New("invalid asset generator configuration")

// ConfigError is a user-actionable configuration failure.
type ConfigError struct {
	// Reason describes what is wrong, naming the offending value.
	Reason string
	// Hint tells the user how to fix it.
	Hint string
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return e.Reason + " (" + e.Hint + ")"
	}
	return e.Reason
}

// Is reports whether the error matches the ErrConfig sentinel.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
