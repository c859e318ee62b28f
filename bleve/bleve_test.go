package bleve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub/testutil"
)

func createUserIndex(t *testing.T) (*UserIndex, func()) {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err, "could not create tmp dir")

	index := &UserIndex{}
	if err := index.Open(filepath.Join(dir, "users.bleve")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index:", err)
	}

	return index, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func createCourseIndex(t *testing.T) (*CourseIndex, func()) {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err, "could not create tmp dir")

	index := &CourseIndex{}
	if err := index.Open(filepath.Join(dir, "courses.bleve")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index:", err)
	}

	return index, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestUserIndex(t *testing.T) {
	index, tearDown := createUserIndex(t)
	defer tearDown()

	testutil.TestUserIndex(t, index)
}

func TestCourseIndex(t *testing.T) {
	index, tearDown := createCourseIndex(t)
	defer tearDown()

	testutil.TestCourseIndex(t, index)
}

func TestUserIndex_Reopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err, "could not create tmp dir")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "users.bleve")

	index := &UserIndex{}
	require.NoError(t, index.Open(path), "first open should create the index")
	require.NoError(t, index.Close(), "close should not fail")

	index = &UserIndex{}
	require.NoError(t, index.Open(path), "second open should reuse the index")
	require.NoError(t, index.Close(), "close should not fail")
}
