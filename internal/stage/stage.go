package stage

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rtstage/rtstage/internal/platform"
)

// Action is what staging did with one library.
type Action string

const (
	ActionLinked        Action = "linked"
	ActionCopied        Action = "copied"
	ActionAlreadyStaged Action = "already-staged"
)

// Staged records one staged library.
type Staged struct {
	Kind   Kind
	Src    string
	Dst    string
	Action Action
}

// Stager links or copies matching libraries into a destination directory.
type Stager struct {
	// Caps decides whether a symlink is attempted; nil means platform.Host().
	Caps     platform.Capabilities
	LinkTest bool
	Log      zerolog.Logger
}

func (s *Stager) caps() platform.Capabilities {
	if s.Caps == nil {
		return platform.Host()
	}
	return s.Caps
}

// StageDir stages the first matching file of each kind from dir into dest.
// A missing standard library is a *NotFoundError; a missing test library
// in link-test mode is only logged.
func (s *Stager) StageDir(dir string, ext platform.Extension, dest string) ([]Staged, error) {
	candidates, err := Scan(dir, ext, s.LinkTest)
	if err != nil {
		return nil, err
	}

	kinds := []Kind{KindStd}
	if s.LinkTest {
		kinds = append(kinds, KindTest)
	}

	var staged []Staged
	for _, kind := range kinds {
		c, ok := first(candidates, kind)
		if !ok {
			if kind == KindStd {
				return staged, &NotFoundError{Dir: dir, Ext: ext}
			}
			s.Log.Warn().Str("dir", dir).Str("pattern", Pattern(kind, ext)).Msg("test library not found")
			continue
		}

		st, err := s.Stage(c, dest)
		if err != nil {
			return staged, err
		}
		staged = append(staged, st)
	}
	return staged, nil
}

// Stage places one candidate into dest. A directory or symlink already at
// the destination path counts as staged, as does a regular file with the
// same bytes. Otherwise a symlink is tried when supported, then a copy.
func (s *Stager) Stage(c Candidate, dest string) (Staged, error) {
	dst := filepath.Join(dest, c.Name)
	st := Staged{Kind: c.Kind, Src: c.Path, Dst: dst}

	if platform.IsSymlinkOrDir(dst) {
		st.Action = ActionAlreadyStaged
		s.Log.Debug().Str("dst", dst).Msg("already staged")
		return st, nil
	}
	if same, err := platform.SameContents(c.Path, dst); err == nil && same {
		st.Action = ActionAlreadyStaged
		s.Log.Debug().Str("dst", dst).Msg("identical copy present")
		return st, nil
	}

	src := c.Path
	if abs, err := filepath.Abs(src); err == nil {
		src = abs
	}

	if s.caps().SupportsSymlink() {
		err := platform.CreateSymlink(src, dst)
		if err == nil {
			st.Action = ActionLinked
			s.Log.Debug().Str("src", src).Str("dst", dst).Msg("linked")
			return st, nil
		}
		s.Log.Debug().Err(err).Str("dst", dst).Msg("symlink failed, copying")
	}

	if err := platform.CopyFile(src, dst); err != nil {
		return st, &CopyError{Src: src, Dst: dst, Err: err}
	}
	st.Action = ActionCopied
	s.Log.Debug().Str("src", src).Str("dst", dst).Msg("copied")
	return st, nil
}

func first(candidates []Candidate, kind Kind) (Candidate, bool) {
	for _, c := range candidates {
		if c.Kind == kind {
			return c, true
		}
	}
	return Candidate{}, false
}
