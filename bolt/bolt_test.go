package bolt

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub/testutil"
)

// createDriver returns an open driver and a tearDown function for cleaning.
func createDriver(t *testing.T) (*Driver, func()) {
	tmpFile, err := os.CreateTemp("", "")
	require.NoError(t, err, "could not create tmp file")

	filename := tmpFile.Name()
	driver := &Driver{}
	err = driver.Open(filename)
	if err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	return driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestUserRepository(t *testing.T) {
	driver, tearDown := createDriver(t)
	defer tearDown()

	testutil.TestUserRepository(t, &UserRepository{Driver: driver})
}

func TestNoteRepository(t *testing.T) {
	driver, tearDown := createDriver(t)
	defer tearDown()

	testutil.TestNoteRepository(t, &NoteRepository{Driver: driver})
}

func TestCourseRepository(t *testing.T) {
	driver, tearDown := createDriver(t)
	defer tearDown()

	testutil.TestCourseRepository(t, &CourseRepository{Driver: driver})
}
