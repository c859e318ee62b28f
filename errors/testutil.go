package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertCode checks the code carried by err. Errors from outside this
// package resolve to DefaultCode, like Code does.
func AssertCode(t *testing.T, err error, code int) {
	assert.Equal(t, code, Code(err), "code should be equal")
}

// AssertCause checks that cause appears somewhere in err's unwrap
// chain.
func AssertCause(t *testing.T, err error, cause error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		if e, ok := e.(Error); ok {
			msg = e.Message()
		}
		if msg == cause.Error() {
			return
		}
	}
	assert.Fail(t, fmt.Sprintf("%v should have %v in its cause chain", err, cause))
}
