// Package toolchain finds the directory that holds the toolchain's runtime
// libraries and the library extension of the target. Two Locator strategies
// produce the same Location: DirectLocator builds the path from the rustup
// installation, QueryLocator asks the compiler with
// `rustc --print=target-libdir --print=cfg`. Dispatch selects one by name.
package toolchain
