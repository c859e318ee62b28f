package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub"
)

// TestCourseRepository runs the course repository contract against any
// implementation.
func TestCourseRepository(t *testing.T, repo notehub.CourseRepository) {
	courses := []*notehub.Course{
		{
			ExternalID: "ext-1",
			Username:   "gophers",
			Name:       "Go Gophers",
			CreatorID:  "u1",
		},
		{
			ExternalID: "ext-2",
			Username:   "pizzaiolos",
			Name:       "Pizzaiolos",
			CreatorID:  "u2",
			Members:    []string{"u1", "u3"},
			Notes:      []string{"n1"},
		},
	}

	for _, course := range courses {
		err := repo.Upsert(course)
		require.NoError(t, err, "insert %s must not fail", course.Username)
		require.NotEqual(t, "", course.ID, "id must be set by insert")
	}
	require.NotEqual(t, courses[0].ID, courses[1].ID, "all ids must be different")

	for _, course := range courses {
		retrieved, err := repo.Get(course.ID)
		require.NoError(t, err, "get should not fail")
		require.NotNil(t, retrieved, "course should be found")
		assertCourse(t, course, retrieved, "get "+course.Username)
	}

	retrieved, err := repo.GetByExternalID("ext-2")
	require.NoError(t, err, "get by external id should not fail")
	require.NotNil(t, retrieved, "course should be found by external id")
	assertCourse(t, courses[1], retrieved, "get by external id")

	retrieved, err = repo.GetByUsername("gophers")
	require.NoError(t, err, "get by username should not fail")
	require.NotNil(t, retrieved, "course should be found by username")
	assertCourse(t, courses[0], retrieved, "get by username")

	missing, err := repo.Get("no-such-course")
	require.NoError(t, err, "get on a missing id should not fail")
	assert.Nil(t, missing, "get on a missing id should return nil")

	missing, err = repo.GetByExternalID("no-such-external-id")
	require.NoError(t, err, "get on a missing external id should not fail")
	assert.Nil(t, missing, "get on a missing external id should return nil")

	missing, err = repo.GetByUsername("no-such-username")
	require.NoError(t, err, "get on a missing username should not fail")
	assert.Nil(t, missing, "get on a missing username should return nil")

	// Update membership in place
	courses[1].Members = append(courses[1].Members, "u4")
	courses[1].Name = "Renamed"
	require.NoError(t, repo.Upsert(courses[1]), "update should not fail")

	retrieved, err = repo.Get(courses[1].ID)
	require.NoError(t, err, "get after update should not fail")
	require.NotNil(t, retrieved, "course should still be found")
	assertCourse(t, courses[1], retrieved, "get after update")

	// List skips missing ids
	listed, err := repo.List(courses[0].ID, "no-such-course", courses[1].ID)
	require.NoError(t, err, "list should not fail")
	require.Len(t, listed, 2, "list should skip missing ids")

	all, err := repo.All()
	require.NoError(t, err, "all should not fail")
	require.Len(t, all, len(courses), "all should return every course")

	// Delete
	require.NoError(t, repo.Delete(courses[0].ID), "delete should not fail")
	deleted, err := repo.Get(courses[0].ID)
	require.NoError(t, err, "get after delete should not fail")
	assert.Nil(t, deleted, "course should be gone after delete")
}

func assertCourse(t *testing.T, expected, actual *notehub.Course, name string) {
	assert.Equal(t, expected.ID, actual.ID, "%s - ids should be equal", name)
	assert.Equal(t, expected.ExternalID, actual.ExternalID, "%s - external ids should be equal", name)
	assert.Equal(t, expected.Username, actual.Username, "%s - usernames should be equal", name)
	assert.Equal(t, expected.Name, actual.Name, "%s - names should be equal", name)
	assert.Equal(t, expected.CreatorID, actual.CreatorID, "%s - creators should be equal", name)

	assertIDSet(t, expected.Members, actual.Members, name+" - members")
	assertIDSet(t, expected.Notes, actual.Notes, name+" - notes")
}
