package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// Default code defines the code that will be used by default when
// none is given. It is set to 500, Internal Server Error
var DefaultCode = 500

type myError struct {
	code  int
	msg   string
	cause *myError
}

func (err *myError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *myError) Code() int {
	return err.code
}

func (err *myError) Message() string {
	return err.msg
}

func (err *myError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// Unwrap exposes the cause to the standard errors helpers, so that
// callers can walk the chain with errors.Is and errors.As.
func (err *myError) Unwrap() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) func(error) error {
	return func(err error) error {
		switch err := err.(type) {
		case *myError:
			err.code = code
			return err
		}

		if err == nil {
			return nil
		}

		// default
		return &myError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

func WithCause(cause error) func(error) error {
	var myCause *myError
	switch cause := cause.(type) {
	case *myError:
		myCause = cause
	default:
		myCause = &myError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if myErr, ok := err.(*myError); ok {
			myErr.cause = myCause
			return myErr
		}

		if err == nil {
			return nil
		}

		return &myError{
			msg:   err.Error(),
			code:  myCause.code,
			cause: myCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &myError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// Code extracts the code carried by err, falling back on DefaultCode
// for errors that did not come from this package.
func Code(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}

// IsNotFound reports whether err carries the not-found code.
func IsNotFound(err error) bool { return Code(err) == 404 }

// IsConflict reports whether err carries the conflict code.
func IsConflict(err error) bool { return Code(err) == 409 }
