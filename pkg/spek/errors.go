// Package spek is the public entry point: it wires audio source, analyzer,
// renderer, legend generator and overlay compositor into one call, and
// maps every stage's native error into the public taxonomy. Grounded on
// the teacher's cmd/spectrogram/main.go wiring and original_source's
// api/generate.go GenerateError enum.
package spek

import (
	"errors"
	"fmt"
)

// Kind is the public error taxonomy surfaced by GenerateSpectrogram.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindDecodeError
	KindAnalysisError
	KindRenderError
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindDecodeError:
		return "DecodeError"
	case KindAnalysisError:
		return "AnalysisError"
	case KindRenderError:
		return "RenderError"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the single public error type GenerateSpectrogram returns.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// ErrInvalidInput is the sentinel kind checked via errors.Is against a
// returned *Error by callers that only care about the kind, not the cause.
var (
	ErrInvalidInput  = errors.New("spek: invalid input")
	ErrDecodeError   = errors.New("spek: decode error")
	ErrAnalysisError = errors.New("spek: analysis error")
	ErrRenderError   = errors.New("spek: render error")
	ErrCancelled     = errors.New("spek: cancelled")
)

// Is reports whether target matches e's kind's sentinel, so callers can
// write errors.Is(err, spek.ErrAnalysisError) without a type assertion.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindDecodeError:
		return target == ErrDecodeError
	case KindAnalysisError:
		return target == ErrAnalysisError
	case KindRenderError:
		return target == ErrRenderError
	case KindCancelled:
		return target == ErrCancelled
	}
	return false
}
