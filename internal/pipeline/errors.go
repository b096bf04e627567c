package pipeline

import "fmt"

// Kind classifies a pipeline failure for the caller. No kind is retried
// internally; retry policy belongs to whoever invoked the run.
type Kind int

const (
	// KindDecode: the input could not be interpreted as a raster image.
	KindDecode Kind = iota + 1
	// KindInvalidDimensions: a zero width or height at a stage boundary.
	KindInvalidDimensions
	// KindEncode: compressing an output map failed.
	KindEncode
	// KindPersist: a directory or file write failed.
	KindPersist
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode failure"
	case KindInvalidDimensions:
		return "invalid dimensions"
	case KindEncode:
		return "encode failure"
	case KindPersist:
		return "persistence failure"
	default:
		return "unknown failure"
	}
}

// Error is the single failed-result signal of a run: a kind plus detail.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}
