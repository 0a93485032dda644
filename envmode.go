package envmode

import (
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// LookupFunc reports the value of a single configuration variable and
// whether it is set at all. A variable set to the empty string counts as
// set. The default implementation is os.LookupEnv; tests and embedders can
// inject their own via WithLookup or WithEnviron.
type LookupFunc func(key string) (string, bool)

// DefaultValidModes is the mode set used when WithValidModes is not given.
var DefaultValidModes = []string{"dev", "prod"}

// Env reads typed settings from the process environment (or any injected
// lookup), pinned to a deployment mode resolved once at construction.
//
// Construct one Env per process at startup, then call it from anywhere:
//
//	env, err := envmode.New(envmode.WithModeVar("APP_MODE"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	debug, err := env.Boolean([]string{"DEBUG"}, false)
//	dbURL, err := env.Get([]string{"DATABASE_URL", "DB_URL"})
//
// Env is immutable after New returns and safe for concurrent readers.
type Env struct {
	modeVar     string
	validModes  []string
	defaultMode string
	mode        string
	lookup      LookupFunc
}

type settings struct {
	modeVar     string
	validModes  []string
	defaultMode string
	lookup      LookupFunc
	dotenv      []string
	loadDotenv  bool
}

// Option configures Env construction.
type Option func(*settings)

// WithModeVar names the environment variable holding the deployment mode.
// When the variable is unset the default mode applies; when it is set to a
// value outside the valid modes, New fails with *InvalidModeError.
func WithModeVar(name string) Option {
	return func(s *settings) { s.modeVar = name }
}

// WithValidModes replaces the default mode set ("dev", "prod"). The first
// listed mode becomes the default unless WithDefaultMode overrides it.
func WithValidModes(modes ...string) Option {
	return func(s *settings) { s.validModes = modes }
}

// WithDefaultMode sets the mode used when the mode variable is unset or no
// mode variable was named. It must belong to the valid modes.
func WithDefaultMode(mode string) Option {
	return func(s *settings) { s.defaultMode = mode }
}

// WithLookup replaces os.LookupEnv as the variable source. Useful for
// deterministic tests that must not mutate the process environment.
func WithLookup(fn LookupFunc) Option {
	return func(s *settings) { s.lookup = fn }
}

// WithEnviron reads variables from the given map instead of the process
// environment. Shorthand over WithLookup.
func WithEnviron(vars map[string]string) Option {
	return func(s *settings) {
		s.lookup = func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		}
	}
}

// WithDotenv loads the named .env files into the process environment before
// the mode is resolved. Without arguments it loads ".env" from the current
// directory. A missing file is silently ignored; already-set environment
// variables always win over .env entries. Has no effect when combined with
// a custom lookup that does not read the process environment.
func WithDotenv(paths ...string) Option {
	return func(s *settings) {
		s.loadDotenv = true
		s.dotenv = paths
	}
}

// New builds an Env, resolving the deployment mode exactly once. The mode
// comes from the variable named by WithModeVar when that variable is set,
// and from the default mode otherwise. A resolved mode outside the valid
// set fails with *InvalidModeError.
func New(opts ...Option) (*Env, error) {
	s := settings{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&s)
	}

	if s.loadDotenv {
		// Missing .env files are fine; existing env vars take precedence.
		_ = godotenv.Load(s.dotenv...)
	}

	valid := s.validModes
	if len(valid) == 0 {
		valid = DefaultValidModes
	}
	defaultMode := s.defaultMode
	if defaultMode == "" {
		defaultMode = valid[0]
	}

	mode := defaultMode
	if s.modeVar != "" {
		if v, ok := s.lookup(s.modeVar); ok {
			mode = v
		}
	}
	if !slices.Contains(valid, mode) {
		return nil, &InvalidModeError{Var: s.modeVar, Valid: valid, Mode: mode}
	}

	return &Env{
		modeVar:     s.modeVar,
		validModes:  slices.Clone(valid),
		defaultMode: defaultMode,
		mode:        mode,
		lookup:      s.lookup,
	}, nil
}

// Mode returns the deployment mode resolved at construction.
func (e *Env) Mode() string { return e.mode }

// CoerceFunc converts a raw string value into a typed one. Errors are
// returned to the caller unmodified.
type CoerceFunc func(raw string) (any, error)

type getSettings struct {
	def          any
	hasDefault   bool
	modeDefaults map[string]any
	coerce       CoerceFunc
}

// GetOption configures a single Get call.
type GetOption func(*getSettings)

// Default supplies the value used when none of the candidate variables is
// set. The value may be nil, which Get returns as-is without coercion; that
// is distinct from not passing Default at all, which makes the variable
// required.
func Default(v any) GetOption {
	return func(g *getSettings) {
		g.def = v
		g.hasDefault = true
	}
}

// ModeDefaults supplies per-mode default values. An entry for the current
// mode takes precedence over Default; modes without an entry fall back to
// Default, or to required when Default was not given.
func ModeDefaults(defaults map[string]any) GetOption {
	return func(g *getSettings) { g.modeDefaults = defaults }
}

// Coerce sets the conversion applied to the resolved string value. The
// default leaves the value as a string.
func Coerce(fn CoerceFunc) GetOption {
	return func(g *getSettings) { g.coerce = fn }
}

// Get resolves a single setting. Candidate variables are checked in order
// and the first one that is set wins, even when its value is the empty
// string. When none is set, resolution falls through per-mode defaults and
// then the explicit default; with neither available Get fails with
// *MissingRequiredVariableError.
//
// The coercion applies to values read from the environment and to string
// defaults. A nil default passes through uncoerced, letting callers opt out
// of a setting entirely; defaults that already carry a non-string type are
// returned as-is.
func (e *Env) Get(keys []string, opts ...GetOption) (any, error) {
	g := getSettings{coerce: CoerceString}
	for _, opt := range opts {
		opt(&g)
	}

	// Step 1: first set variable wins.
	if raw, ok := e.firstSet(keys); ok {
		return g.coerce(raw)
	}

	// Step 2: per-mode default for the pinned mode.
	value, ok := g.def, g.hasDefault
	if g.modeDefaults != nil {
		if v, found := g.modeDefaults[e.mode]; found {
			value, ok = v, true
		}
	}

	// Step 3: explicit default; step 4: required.
	if !ok {
		return nil, &MissingRequiredVariableError{Keys: slices.Clone(keys)}
	}
	if value == nil {
		return nil, nil
	}
	if raw, isString := value.(string); isString {
		return g.coerce(raw)
	}
	return value, nil
}

func (e *Env) firstSet(keys []string) (string, bool) {
	for _, key := range keys {
		if raw, ok := e.lookup(key); ok {
			return raw, true
		}
	}
	return "", false
}

// Must panics when err is non-nil and returns v otherwise. Intended for
// startup code where a missing or malformed setting should stop the
// process immediately:
//
//	port := envmode.Must(env.Integer([]string{"PORT"}, 8080))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
