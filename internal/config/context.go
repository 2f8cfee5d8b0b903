package config

import "sort"

// Recognized build variables. These are read under their exact names.
const (
	EnvOutDir           = "OUT_DIR"
	EnvRustupHome       = "RUSTUP_HOME"
	EnvRustupToolchain  = "RUSTUP_TOOLCHAIN"
	EnvRustc            = "RUSTC"
	EnvTarget           = "TARGET"
	EnvEncodedRustflags = "CARGO_ENCODED_RUSTFLAGS"
)

// Keys lists every recognized build variable.
var Keys = []string{
	EnvOutDir,
	EnvRustupHome,
	EnvRustupToolchain,
	EnvRustc,
	EnvTarget,
	EnvEncodedRustflags,
}

// Context is a read-only snapshot of the recognized build variables.
// Empty values are treated as absent.
type Context struct {
	values map[string]string
}

// NewContext copies values into a Context, keeping recognized, non-empty keys.
func NewContext(values map[string]string) Context {
	c := Context{values: make(map[string]string, len(Keys))}
	for _, key := range Keys {
		if v, ok := values[key]; ok && v != "" {
			c.values[key] = v
		}
	}
	return c
}

// Lookup returns the value of key and whether it is set.
func (c Context) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is set.
func (c Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Require returns the value of key or a *MissingEnvError naming it.
func (c Context) Require(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", &MissingEnvError{Key: key}
	}
	return v, nil
}

// Set returns the names of the variables that are present, sorted.
func (c Context) Set() []string {
	names := make([]string, 0, len(c.values))
	for k := range c.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
