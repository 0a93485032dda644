// Package envmode reads typed configuration values from environment
// variables, with per-deployment-mode defaults and simple type coercion.
//
// An Env is constructed once at process startup. It pins a deployment mode
// (for example "dev" or "prod") read from a designated environment variable,
// and is then called per setting to fetch and coerce individual values.
//
// # Features
//
//   - Ordered candidate variables: the first one set wins, even when empty
//   - Explicit defaults, including nil to opt out of a setting
//   - Per-mode defaults checked before the unconditional default
//   - Required settings fail fast with a descriptive error
//   - Typed shortcuts for bool, int, string lists, durations, URLs and more
//   - Optional .env file support via godotenv
//   - Injectable variable lookup for deterministic tests
//
// # Usage
//
//	env, err := envmode.New(
//	    envmode.WithModeVar("APP_MODE"),
//	    envmode.WithDotenv(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	debug, err := env.Boolean([]string{"DEBUG"}, false)
//	hosts, err := env.CommaList([]string{"ALLOWED_HOSTS"})
//	secret, err := env.Get([]string{"SECRET_KEY"}, envmode.ModeDefaults(map[string]any{
//	    "dev": "insecure-dev-key",
//	}))
//	db, err := env.Database([]string{"DATABASE_URL"})
//
// # Modes
//
// The valid modes default to "dev" and "prod", with the first entry acting
// as the default mode. Both can be overridden:
//
//	env, err := envmode.New(
//	    envmode.WithModeVar("DEPLOY_ENV"),
//	    envmode.WithValidModes("staging", "production"),
//	    envmode.WithDefaultMode("production"),
//	)
//
// A mode variable set to anything outside the valid modes fails construction
// with *InvalidModeError.
//
// # Coercion
//
// Get applies a coercion function to the resolved string value; the package
// ships coercers for integers, booleans, comma lists, durations, URLs,
// decimal.Decimal, uuid.UUID, Kubernetes resource quantities, slog levels,
// expr programs and database URLs. Coercion errors propagate to the caller
// unmodified. A nil default passes through without coercion, so callers can
// distinguish "explicitly no value" from "missing".
//
// # Error Handling
//
// Every failure is a configuration error meant to surface at startup. The
// package never retries or recovers internally; use Must for settings the
// process cannot start without.
package envmode
