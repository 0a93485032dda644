package envmode

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/api/resource"
)

// The typed shortcuts below fix the coercion for a single type and accept at
// most one optional default. Omitting the default makes the variable
// required. Per-mode defaults are intentionally not available here: callers
// needing mode-specific typed defaults use Get with ModeDefaults and an
// explicit coercer.

func lookupTyped[T any](e *Env, keys []string, parse func(string) (T, error), def []T) (T, error) {
	if raw, ok := e.firstSet(keys); ok {
		return parse(raw)
	}
	if len(def) > 0 {
		return def[0], nil
	}
	var zero T
	return zero, &MissingRequiredVariableError{Keys: keys}
}

// String returns the raw string value of the first set variable.
func (e *Env) String(keys []string, def ...string) (string, error) {
	return lookupTyped(e, keys, func(raw string) (string, error) { return raw, nil }, def)
}

// Boolean applies ParseBoolean to the first set variable.
func (e *Env) Boolean(keys []string, def ...bool) (bool, error) {
	return lookupTyped(e, keys, func(raw string) (bool, error) { return ParseBoolean(raw), nil }, def)
}

// Integer parses the first set variable as a base-10 integer. A non-numeric
// value is an error.
func (e *Env) Integer(keys []string, def ...int) (int, error) {
	return lookupTyped(e, keys, parseInteger, def)
}

// CommaList applies ParseCommaList to the first set variable.
func (e *Env) CommaList(keys []string, def ...[]string) ([]string, error) {
	return lookupTyped(e, keys, func(raw string) ([]string, error) { return ParseCommaList(raw), nil }, def)
}

// Duration parses the first set variable with time.ParseDuration.
func (e *Env) Duration(keys []string, def ...time.Duration) (time.Duration, error) {
	return lookupTyped(e, keys, parseDuration, def)
}

// URL parses the first set variable with url.Parse.
func (e *Env) URL(keys []string, def ...*url.URL) (*url.URL, error) {
	return lookupTyped(e, keys, parseURL, def)
}

// Decimal parses the first set variable as a decimal.Decimal.
func (e *Env) Decimal(keys []string, def ...decimal.Decimal) (decimal.Decimal, error) {
	return lookupTyped(e, keys, parseDecimal, def)
}

// UUID parses the first set variable as a uuid.UUID.
func (e *Env) UUID(keys []string, def ...uuid.UUID) (uuid.UUID, error) {
	return lookupTyped(e, keys, parseUUID, def)
}

// Quantity parses the first set variable as a Kubernetes resource quantity.
func (e *Env) Quantity(keys []string, def ...resource.Quantity) (resource.Quantity, error) {
	return lookupTyped(e, keys, parseQuantity, def)
}

// LogLevel parses the first set variable as a slog.Level.
func (e *Env) LogLevel(keys []string, def ...slog.Level) (slog.Level, error) {
	return lookupTyped(e, keys, parseLogLevel, def)
}

// Program compiles the first set variable as an expr expression. The
// optional default is expression source, compiled the same way.
func (e *Env) Program(keys []string, def ...string) (*vm.Program, error) {
	if raw, ok := e.firstSet(keys); ok {
		return compileProgram(raw)
	}
	if len(def) > 0 {
		return compileProgram(def[0])
	}
	return nil, &MissingRequiredVariableError{Keys: keys}
}

// Database parses the first set variable as a database URL. The optional
// default is a URL string, parsed the same way.
func (e *Env) Database(keys []string, def ...string) (*DatabaseConfig, error) {
	if raw, ok := e.firstSet(keys); ok {
		return ParseDatabaseURL(raw)
	}
	if len(def) > 0 {
		return ParseDatabaseURL(def[0])
	}
	return nil, &MissingRequiredVariableError{Keys: keys}
}
