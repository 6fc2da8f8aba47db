// Package errors is the error facade for the persistence layer: matching goes
// through the standard library, annotation through pkg/errors so wrapped
// database failures keep the stack of the repository call that produced them.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error carrying a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join combines a primary failure with the failure of its compensating action.
// Both stay reachable through Is and As.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace only.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
