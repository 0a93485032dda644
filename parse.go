package envmode

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/api/resource"
)

// ParseBoolean parses an environment variable string into a bool.
//
// The empty string, "0", "n", "f", "no" and "false" (case insensitive) are
// false; every other value is true. The function is deliberately permissive:
// unexpected strings read as true rather than failing.
func ParseBoolean(s string) bool {
	switch strings.ToLower(s) {
	case "", "0", "n", "f", "no", "false":
		return false
	}
	return true
}

// ParseCommaList parses a comma-separated environment variable into a
// string slice. An empty or all-whitespace value yields an empty slice.
// Elements are trimmed of surrounding whitespace; order and duplicates are
// preserved.
func ParseCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func parseInteger(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	return n, nil
}

func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	return d, nil
}

func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	return u, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	return d, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid UUID %q: %w", raw, err)
	}
	return id, nil
}

func parseQuantity(raw string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(raw)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("invalid quantity %q: %w", raw, err)
	}
	return q, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	if level, err := strconv.Atoi(raw); err == nil {
		return slog.Level(level), nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be debug|info|warn|error or integer", raw)
}

func compileProgram(raw string) (*vm.Program, error) {
	program, err := expr.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", raw, err)
	}
	return program, nil
}

// CoerceString is the default coercion: it returns the raw value unchanged.
func CoerceString(raw string) (any, error) { return raw, nil }

// CoerceBoolean applies ParseBoolean. It never fails.
func CoerceBoolean(raw string) (any, error) { return ParseBoolean(raw), nil }

// CoerceInteger parses a base-10 integer.
func CoerceInteger(raw string) (any, error) { return parseInteger(raw) }

// CoerceCommaList applies ParseCommaList. It never fails.
func CoerceCommaList(raw string) (any, error) { return ParseCommaList(raw), nil }

// CoerceDuration parses a time.Duration (e.g. "30s", "1h15m").
func CoerceDuration(raw string) (any, error) { return parseDuration(raw) }

// CoerceURL parses a *url.URL.
func CoerceURL(raw string) (any, error) { return parseURL(raw) }

// CoerceDecimal parses a decimal.Decimal for exact arithmetic on values
// like prices or rates.
func CoerceDecimal(raw string) (any, error) { return parseDecimal(raw) }

// CoerceUUID parses a uuid.UUID.
func CoerceUUID(raw string) (any, error) { return parseUUID(raw) }

// CoerceQuantity parses a Kubernetes resource quantity such as "250m" or
// "1.5Gi".
func CoerceQuantity(raw string) (any, error) { return parseQuantity(raw) }

// CoerceLogLevel parses a slog.Level from a level word or an integer.
func CoerceLogLevel(raw string) (any, error) { return parseLogLevel(raw) }

// CoerceProgram compiles the value as an expr expression into a
// *vm.Program, for business rules kept in the environment.
func CoerceProgram(raw string) (any, error) { return compileProgram(raw) }

// CoerceDatabaseURL applies ParseDatabaseURL.
func CoerceDatabaseURL(raw string) (any, error) { return ParseDatabaseURL(raw) }
