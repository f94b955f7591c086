// Package errors defines the structured failures the translator reports.
// Both kinds abort the translation of the current function; neither is ever
// allowed to surface as a panic.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a translation failure.
type Kind int

const (
	// UnsupportedConstruct means the source program uses something the
	// backend does not translate yet. The input is fine; the backend is
	// incomplete.
	UnsupportedConstruct Kind = iota

	// InvariantViolation means the input broke an assumption the
	// translation relies on. The backend is fine; the input is not.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case UnsupportedConstruct:
		return "unsupported construct"
	case InvariantViolation:
		return "invariant violation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TranslationError is the error type for both failure kinds. Construct names
// the source construct that failed (statement, terminator, rvalue, type,
// ...) and may be empty for invariant violations.
type TranslationError struct {
	Kind      Kind
	Construct string
	Detail    string
}

func (e *TranslationError) Error() string {
	if e.Construct == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Construct, e.Detail)
}

// Unsupportedf builds an UnsupportedConstruct failure for the named
// construct.
func Unsupportedf(construct, format string, args ...any) *TranslationError {
	return &TranslationError{
		Kind:      UnsupportedConstruct,
		Construct: construct,
		Detail:    fmt.Sprintf(format, args...),
	}
}

// Invariantf builds an InvariantViolation failure.
func Invariantf(format string, args ...any) *TranslationError {
	return &TranslationError{
		Kind:   InvariantViolation,
		Detail: fmt.Sprintf(format, args...),
	}
}

// IsUnsupported reports whether err is (or wraps) an UnsupportedConstruct
// failure.
func IsUnsupported(err error) bool {
	var te *TranslationError
	return stderrors.As(err, &te) && te.Kind == UnsupportedConstruct
}

// IsInvariant reports whether err is (or wraps) an InvariantViolation
// failure.
func IsInvariant(err error) bool {
	var te *TranslationError
	return stderrors.As(err, &te) && te.Kind == InvariantViolation
}
