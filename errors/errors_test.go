package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *myError
	}{
		{
			err:  errors.New("simple error"),
			code: 404,
			expected: &myError{
				msg:   "simple error",
				code:  404,
				cause: nil,
			},
		},
		{
			err: &myError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			code: 501,
			expected: &myError{
				msg:   "custom error",
				code:  501,
				cause: nil,
			},
		},
		{
			err: &myError{
				msg:   "keep cause",
				code:  125,
				cause: &myError{msg: "I am the cause"},
			},
			code: 305,
			expected: &myError{
				msg:   "keep cause",
				code:  305,
				cause: &myError{msg: "I am the cause"},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*myError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *myError
	}{
		{
			err:   errors.New("simple error"),
			cause: errors.New("I am the cause"),
			expected: &myError{
				msg:   "simple error",
				code:  500,
				cause: &myError{msg: "I am the cause", code: DefaultCode, cause: nil},
			},
		},
		{
			err: errors.New("simple error"),
			cause: &myError{
				msg:   "forward code",
				code:  120,
				cause: nil,
			},
			expected: &myError{
				msg:   "simple error",
				code:  120,
				cause: &myError{msg: "forward code", code: 120, cause: nil},
			},
		},
		{
			err: &myError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			cause: &myError{
				msg:   "custom cause",
				code:  300,
				cause: nil,
			},
			expected: &myError{
				msg:   "custom error",
				code:  200,
				cause: &myError{msg: "custom cause", code: 300, cause: nil},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			cause:    errors.New("The cause is ignored if the wrapper is nil"),
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*myError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := New("failed to save note", WithCause(cause))

	unwrapped := errors.Unwrap(err)
	if unwrapped == nil {
		t.Fatal("expected a cause, got nil")
	}
	if unwrapped.Error() != cause.Error() {
		t.Errorf("cause: %q != %q", cause.Error(), unwrapped.Error())
	}

	if errors.Unwrap(unwrapped) != nil {
		t.Error("cause of the cause should be nil")
	}

	AssertCause(t, err, cause)
	AssertCause(t, New("failed to resolve feed", WithCause(err)), cause)
}

func TestCode(t *testing.T) {
	tts := []struct {
		err      error
		expected int
	}{
		{err: New("nope", NotFound()), expected: 404},
		{err: New("again", Conflict()), expected: 409},
		{err: New("boom"), expected: 500},
		{err: errors.New("not mine"), expected: DefaultCode},
	}

	for i, tt := range tts {
		if code := Code(tt.err); code != tt.expected {
			t.Errorf("%d - code: %d != %d", i, tt.expected, code)
		}
		AssertCode(t, tt.err, tt.expected)
	}

	if !IsNotFound(New("nope", NotFound())) {
		t.Error("IsNotFound should be true for 404 errors")
	}
	if !IsConflict(New("again", Conflict())) {
		t.Error("IsConflict should be true for 409 errors")
	}
}

func assertErrors(exp *myError, got *myError, t *testing.T, name string) {
	if exp == nil && got == nil {
		return
	}

	if exp == nil && got != nil {
		t.Errorf("%s - expected nil, got non-nil", name)
		return
	}

	if exp != nil && got == nil {
		t.Errorf("%s - expected non-nil, got nil", name)
		return
	}

	if got.code != exp.code {
		t.Errorf("%s - code: %d != %d", name, exp.code, got.code)
	}

	if got.msg != exp.msg {
		t.Errorf("%s - msg: %s != %s", name, exp.msg, got.msg)
	}

	assertErrors(exp.cause, got.cause, t, name)
}
