package workspace

import (
	"errors"
	"fmt"
)

// Operations reported by FilesystemError
const (
	OpGetwd = "getwd"
	OpMkdir = "mkdir"
	OpEnter = "enter"
	OpWrite = "write"
)

// ErrNotDir is wrapped when the target path exists but is not a directory
var ErrNotDir = errors.New("not a directory")

// FilesystemError reports a failed filesystem step and the path it touched
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// IsFilesystemError reports whether err wraps a FilesystemError
func IsFilesystemError(err error) bool {
	var fsErr *FilesystemError
	return errors.As(err, &fsErr)
}
