package level

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrUnderflow = errors.New("level: buffer underflow")
	ErrFormat    = errors.New("level: invalid format")
	ErrIO        = errors.New("level: i/o failure")
	ErrFatal     = errors.New("level: fatal configuration error")
	ErrTooLarge  = errors.New("level: file exceeds size limit")
	ErrIndex     = errors.New("level: index out of range")
)

// UnderflowError reports a read that needed more bytes than remained.
type UnderflowError struct {
	Offset    int
	Need      int
	Remaining int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("level: buffer underflow at offset %d (need %d, have %d)", e.Offset, e.Need, e.Remaining)
}

// Is lets callers match either ErrUnderflow or io.ErrUnexpectedEOF.
func (e *UnderflowError) Is(target error) bool {
	return target == ErrUnderflow || target == io.ErrUnexpectedEOF
}

// FormatError reports bytes that are present but do not match what the
// format expects.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("level: %s at offset %d", e.Msg, e.Offset)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError wraps a failure to open or fully read a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("level: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// FatalError is returned for an unusable working directory. The caller
// decides whether the process should end.
type FatalError struct {
	Path   string
	Reason string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("level: %s: %s", e.Path, e.Reason)
}

func (e *FatalError) Is(target error) bool { return target == ErrFatal }
