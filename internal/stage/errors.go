package stage

import (
	"errors"
	"fmt"

	"github.com/rtstage/rtstage/internal/platform"
)

var (
	// ErrOutDirLayout matches any *OutDirLayoutError with errors.Is.
	ErrOutDirLayout = errors.New("unexpected output directory layout")
	// ErrNotFound matches any *NotFoundError with errors.Is.
	ErrNotFound = errors.New("library not found")
)

// OutDirLayoutError reports an output directory with fewer than three
// ancestors and no deps/ child.
type OutDirLayoutError struct {
	Path string
}

func (e *OutDirLayoutError) Error() string {
	return fmt.Sprintf("unexpected `OUT_DIR` layout `%s`", e.Path)
}

func (e *OutDirLayoutError) Is(target error) bool { return target == ErrOutDirLayout }

// ReadDirError reports a library directory that could not be listed.
type ReadDirError struct {
	Dir string
	Err error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("could not read directory entries of `%s`: %v", e.Dir, e.Err)
}

func (e *ReadDirError) Unwrap() error { return e.Err }

// CopyError reports a failed copy into the destination.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("could not copy file from `%s` to `%s`: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// NotFoundError reports that no standard library matched in Dir.
type NotFoundError struct {
	Dir string
	Ext platform.Extension
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find `%s` in `%s`", Pattern(KindStd, e.Ext), e.Dir)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
