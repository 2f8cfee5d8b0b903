// Package config builds the immutable configuration a staging run works
// from. It snapshots the build variables handed over by cargo (OUT_DIR,
// RUSTC, TARGET, ...) into a Context, and merges tool options from flags,
// RTSTAGE_* environment variables, an optional env file and an optional
// YAML config file validated against an embedded JSON schema.
package config
