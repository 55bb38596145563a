// Package errors is the single import for error handling in catrescue.
// Inspection helpers come from the standard library; constructors and
// wrappers come from pkg/errors so every wrapped error carries a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Unwrap(err error) error { return stderrors.Unwrap(err) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// New returns a sentinel-style error without a stack trace.
func New(text string) error { return stderrors.New(text) }

// Errorf formats an error and records the caller's stack.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// Wrap annotates err with message and a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error { return pkgerrors.WithStack(err) }

func WithMessage(err error, message string) error { return pkgerrors.WithMessage(err, message) }

// Cause walks pkg/errors wrappers down to the innermost error.
func Cause(err error) error { return pkgerrors.Cause(err) }
