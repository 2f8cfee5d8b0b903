// Package stage places the toolchain's runtime library next to the build
// artifacts. It resolves the destination from OUT_DIR, picks the matching
// library files out of the toolchain's library directory, and links or
// copies them there. Running it again over a staged destination is a no-op.
package stage
