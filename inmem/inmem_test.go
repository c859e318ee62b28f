package inmem

import (
	"testing"

	"github.com/bobinette/notehub/testutil"
)

func TestUserRepository(t *testing.T) {
	testutil.TestUserRepository(t, NewUserRepository())
}

func TestNoteRepository(t *testing.T) {
	testutil.TestNoteRepository(t, NewNoteRepository())
}

func TestCourseRepository(t *testing.T) {
	testutil.TestCourseRepository(t, NewCourseRepository())
}

func TestUserIndex(t *testing.T) {
	testutil.TestUserIndex(t, NewUserIndex())
}

func TestCourseIndex(t *testing.T) {
	testutil.TestCourseIndex(t, NewCourseIndex())
}
