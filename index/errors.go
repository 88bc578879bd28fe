package index

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt is returned when a query is issued before a successful
	// Build, BuildWithRawData or Load.
	ErrNotBuilt = errors.New("index is not built")

	// ErrInvalidRawData is returned by BuildWithRawData when the raw byte
	// buffer is malformed.
	ErrInvalidRawData = errors.New("invalid raw string data")
)

// ErrCorruptState indicates that Load was given blobs that failed
// structural validation. The index is left unbuilt.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCorruptState struct {
	Blob   string
	Reason string
	cause  error
}

// NewErrCorruptState creates an ErrCorruptState for a blob with an optional cause.
func NewErrCorruptState(blob, reason string, cause error) *ErrCorruptState {
	return &ErrCorruptState{Blob: blob, Reason: reason, cause: cause}
}

func (e *ErrCorruptState) Error() string {
	return fmt.Sprintf("corrupt index state: blob %q: %s", e.Blob, e.Reason)
}

func (e *ErrCorruptState) Unwrap() error { return e.cause }

// ErrUnsupportedOperator indicates a Query carrying an operator outside the
// recognized set.
type ErrUnsupportedOperator struct {
	Operator Operator
}

func (e *ErrUnsupportedOperator) Error() string {
	return fmt.Sprintf("unsupported operator: %s", e.Operator)
}

// ErrUnknownKind indicates a request for an index kind with no registered
// constructor.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown index kind: %q", string(e.Kind))
}
