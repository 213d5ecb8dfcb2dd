package reader

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange is returned when a requested page does not exist.
var ErrPageOutOfRange = errors.New("page out of range")

// DocumentOpenError reports a document that could not be opened or decoded.
type DocumentOpenError struct {
	Path string
	Err  error
}

func (e *DocumentOpenError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to open document: %v", e.Err)
	}
	return fmt.Sprintf("failed to open document %s: %v", e.Path, e.Err)
}

func (e *DocumentOpenError) Unwrap() error {
	return e.Err
}

// IsDocumentOpenError reports whether err wraps a *DocumentOpenError.
func IsDocumentOpenError(err error) bool {
	var openErr *DocumentOpenError
	return errors.As(err, &openErr)
}
