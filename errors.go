package docgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for export failure conditions. Generation itself never
// fails; only the export operations can.
var (
	ErrNilDocument = errors.New("docgen: document is nil")
	ErrNoPage      = errors.New("docgen: document has no pages")
	ErrNoViewer    = errors.New("docgen: no viewer available on this platform")
)

// ExportError reports a failure in one of the impure export operations. It
// wraps the underlying error and names the operation for context. A failed
// export never mutates the document it was given.
type ExportError struct {
	Op  string // operation name, e.g. "ToBytes", "Preview", "Download"
	Err error  // underlying error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docgen.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docgen.%s: unknown error", e.Op)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// newExportError creates an ExportError wrapping err with operation context.
func newExportError(op string, err error) *ExportError {
	return &ExportError{Op: op, Err: err}
}
