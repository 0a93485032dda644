package envmode

import (
	"fmt"
	"strings"
)

// InvalidModeError reports a deployment mode outside the configured valid
// set. It is returned by New; a bad mode is a deployment error and is never
// recovered from internally.
type InvalidModeError struct {
	Var   string   // name of the mode variable, empty when none was configured
	Valid []string // the configured valid modes
	Mode  string   // the offending resolved value
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("mode from %s env var must be one of %v, not %q", e.Var, e.Valid, e.Mode)
}

// MissingRequiredVariableError reports that none of the candidate variables
// was set and no default was available.
type MissingRequiredVariableError struct {
	Keys []string // candidate variables, in lookup order
}

func (e *MissingRequiredVariableError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("environment variable %q is required", e.Keys[0])
	}
	return fmt.Sprintf("one of environment variables %s is required", strings.Join(e.Keys, ", "))
}

// UnsupportedSchemeError reports a database URL scheme with no registered
// engine.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported database URL scheme %q", e.Scheme)
}
