// Package cli defines the Cobra command tree for rtstage. The root command
// stages the runtime library; locate and version are diagnostics. Commands
// only parse flags, load the configuration and format output; the work
// happens in the config, toolchain and stage packages.
package cli
