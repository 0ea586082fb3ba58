// Package apperr defines the error kinds walt reports to the user.
package apperr

import (
	"errors"
	"io/fs"
	"os/exec"
)

// Kind is a sentinel error class. Match with errors.Is(err, apperr.NotFound).
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	// NotFound covers a missing wallpaper directory or setter binary.
	NotFound Kind = "not found"
	// AccessDenied covers permission failures.
	AccessDenied Kind = "access denied"
	// IO covers every other read or spawn failure.
	IO Kind = "i/o error"
	// EmptyCatalog is returned when a random pick is requested with no items.
	EmptyCatalog Kind = "no wallpapers available"
)

// Error carries the operation and path that failed along with its Kind.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Kind.Error()
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Wrap classifies err and attaches op and path. A nil err stays nil.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOf(err), Op: op, Path: path, Err: err}
}

// KindOf maps filesystem and exec failures onto a Kind.
func KindOf(err error) Kind {
	var (
		e *Error
		k Kind
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &e):
		return e.Kind
	case errors.As(err, &k):
		return k
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return AccessDenied
	default:
		return IO
	}
}
