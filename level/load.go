package level

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Loader reads whole level files into memory.
type Loader struct {
	// MaxSize rejects files larger than this many bytes. Zero means no limit.
	MaxSize int64
	Logger  zerolog.Logger
}

// NewLoader returns a Loader that logs through the global logger.
func NewLoader(maxSize int64) *Loader {
	return &Loader{MaxSize: maxSize, Logger: log.Logger}
}

// LoadFile reads path with no size limit.
func LoadFile(path string) (*Cursor, error) {
	return NewLoader(0).Load(path)
}

// Load reads the entire file at path and returns a little-endian cursor
// positioned at offset 0. The buffer length always equals the file size
// seen at open time; a short read is an error.
func (l *Loader) Load(path string) (*Cursor, error) {
	logger := l.Logger.With().Str("session", uuid.NewString()).Str("path", path).Logger()

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return nil, &IOError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	size := fi.Size()
	if l.MaxSize > 0 && size > l.MaxSize {
		return nil, &IOError{Op: "read", Path: path, Err: ErrTooLarge}
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	logger.Debug().Int64("bytes", size).Msg("loaded level file")

	return NewCursor(data), nil
}
