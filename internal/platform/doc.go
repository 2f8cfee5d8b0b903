// Package platform isolates the host-dependent parts of staging: whether
// symlinks can be created, which shared library extension a target uses,
// and the symlink/copy primitives themselves. On Unix systems staging uses
// native symlinks; on Windows it always falls back to copying the file.
package platform
