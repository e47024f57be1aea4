// Package workspace handles the directories a level editor works in: the
// level directory, the backup directory and listing their contents.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/voxelsplace/redlevel/level"
)

// Kind selects which directory entries Contents returns.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// OpenOrCreate makes sure path is a writable directory, creating it when it
// does not exist. A path that is not a directory, or cannot be written, is
// reported as a *level.FatalError; deciding whether to exit is up to the
// caller.
func OpenOrCreate(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fi, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", &level.FatalError{Path: abs, Reason: "cannot create directory: " + err.Error()}
		}
		log.Info().Str("dir", abs).Msg("created directory")
		return path, nil
	case err != nil:
		return "", &level.FatalError{Path: abs, Reason: err.Error()}
	case !fi.IsDir():
		return "", &level.FatalError{Path: abs, Reason: "not a directory"}
	}

	if !writable(path) {
		return "", &level.FatalError{Path: abs, Reason: "directory is not writable"}
	}
	log.Info().Str("dir", abs).Msg("opened directory")
	return path, nil
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".redlevel-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// Contents lists the files or directories directly inside dir, sorted by
// name. Symlinks are followed.
func Contents(kind Kind, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &level.IOError{Op: "list", Path: dir, Err: err}
	}

	var paths []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		if (kind == KindDir && fi.IsDir()) || (kind == KindFile && fi.Mode().IsRegular()) {
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		log.Info().Str("dir", dir).Stringer("kind", kind).Msg("nothing found")
	} else {
		log.Info().Str("dir", dir).Stringer("kind", kind).Int("count", len(paths)).Msg("found entries")
	}
	return paths, nil
}
