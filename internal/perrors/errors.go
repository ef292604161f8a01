// Package perrors is the propagation pass's error taxonomy: the three
// unrecoverable-bug kinds the pass can surface, and a colorized
// reporter for printing them, adapted from a colorized
// compiler-error-reporting idiom but stripped of the source-position
// and suggestion machinery that belongs to the parser/semantic-analysis
// stages this module does not implement.
package perrors

import "fmt"

// Kind identifies one of the three unrecoverable-bug categories the
// propagation pass can hit. None of these are user-facing data errors:
// each one means the input program (or a previous pass) violated an
// invariant this pass depends on.
type Kind string

const (
	// OutOfBounds: a static array access with a known constant index at
	// or beyond the array's size.
	OutOfBounds Kind = "out-of-bounds"
	// LoopNotUnrolled: a For statement reached this pass; loop
	// unrolling is an upstream responsibility and must have already run.
	LoopNotUnrolled Kind = "loop-not-unrolled"
	// TypeInvariant: the environment holds a value of the wrong shape
	// for the key's type, or upstream types otherwise disagree.
	TypeInvariant Kind = "type-invariant"
)

// PropagationError is an unrecoverable bug surfaced by the propagation
// pass. Context names the assignee or statement that triggered it.
type PropagationError struct {
	Kind    Kind
	Message string
	Context string
}

func (e *PropagationError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Context)
}

// OutOfBoundsf builds an OutOfBounds error.
func OutOfBoundsf(context string, format string, args ...interface{}) *PropagationError {
	return &PropagationError{Kind: OutOfBounds, Message: fmt.Sprintf(format, args...), Context: context}
}

// LoopNotUnrolledf builds a LoopNotUnrolled error.
func LoopNotUnrolledf(context string, format string, args ...interface{}) *PropagationError {
	return &PropagationError{Kind: LoopNotUnrolled, Message: fmt.Sprintf(format, args...), Context: context}
}

// TypeInvariantf builds a TypeInvariant error.
func TypeInvariantf(context string, format string, args ...interface{}) *PropagationError {
	return &PropagationError{Kind: TypeInvariant, Message: fmt.Sprintf(format, args...), Context: context}
}
