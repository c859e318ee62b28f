package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub"
)

// TestUserIndex runs the user index contract against any implementation.
// Queries use word prefixes: that is the common ground between the bleve
// index and the naive in-memory one.
func TestUserIndex(t *testing.T, index notehub.UserIndex) {
	users := []*notehub.User{
		{ID: "1", Username: "pizza", Name: "Pizza Yolo"},
		{ID: "2", Username: "anakin", Name: "Anakin Skywalker"},
		{ID: "3", Username: "luke", Name: "Luke Skywalker"},
	}
	for _, user := range users {
		require.NoError(t, index.Index(user), "indexing %s should not fail", user.Username)
	}

	// Empty query matches everybody
	results, err := index.Search(notehub.UserSearch{Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, uint64(3), results.Pagination.Total, "empty query should match everybody")
	assert.Equal(t, []string{"1", "2", "3"}, results.IDs, "ids should be sorted")

	// Case-insensitive prefix match on name
	results, err = index.Search(notehub.UserSearch{Q: "sky", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, uint64(2), results.Pagination.Total, "sky matches both Skywalkers")
	assert.ElementsMatch(t, []string{"2", "3"}, results.IDs, "both Skywalkers should be returned")

	// Match on username
	results, err = index.Search(notehub.UserSearch{Q: "piz", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"1"}, results.IDs, "piz matches the pizza username")

	// The caller is excluded from the results
	results, err = index.Search(notehub.UserSearch{Q: "sky", ExcludeID: "2", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"3"}, results.IDs, "excluded id should not be returned")

	// Pagination: total counts all matches, not just the page
	results, err = index.Search(notehub.UserSearch{Limit: 2})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, uint64(3), results.Pagination.Total, "total should span pages")
	assert.Len(t, results.IDs, 2, "limit should be honored")
	assert.True(t, results.Pagination.HasNext(len(results.IDs)), "there should be a next page")

	results, err = index.Search(notehub.UserSearch{Limit: 2, Offset: 2})
	require.NoError(t, err, "search should not fail")
	assert.Len(t, results.IDs, 1, "last page should hold the remainder")
	assert.False(t, results.Pagination.HasNext(len(results.IDs)), "there should be no page after the last one")

	// Descending sort
	results, err = index.Search(notehub.UserSearch{Limit: 10, SortBy: "desc"})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"3", "2", "1"}, results.IDs, "desc should reverse the order")

	// Reindexing replaces the document
	users[0].Name = "Calzone"
	require.NoError(t, index.Index(users[0]), "reindex should not fail")
	results, err = index.Search(notehub.UserSearch{Q: "calz", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"1"}, results.IDs, "reindexed name should match")

	// Delete
	require.NoError(t, index.Delete("1"), "delete should not fail")
	results, err = index.Search(notehub.UserSearch{Q: "calz", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Len(t, results.IDs, 0, "deleted user should not match anymore")
}

// TestCourseIndex runs the course index contract against any implementation.
func TestCourseIndex(t *testing.T, index notehub.CourseIndex) {
	courses := []*notehub.Course{
		{ID: "1", Username: "gophers", Name: "Go Gophers"},
		{ID: "2", Username: "pizzaiolos", Name: "Pizza Makers"},
	}
	for _, course := range courses {
		require.NoError(t, index.Index(course), "indexing %s should not fail", course.Username)
	}

	results, err := index.Search(notehub.CourseSearch{Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"1", "2"}, results.IDs, "empty query should match every course")

	results, err = index.Search(notehub.CourseSearch{Q: "piz", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"2"}, results.IDs, "piz matches the pizzaiolos")

	results, err = index.Search(notehub.CourseSearch{Q: "go", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Equal(t, []string{"1"}, results.IDs, "go matches the gophers")

	require.NoError(t, index.Delete("2"), "delete should not fail")
	results, err = index.Search(notehub.CourseSearch{Q: "piz", Limit: 10})
	require.NoError(t, err, "search should not fail")
	assert.Len(t, results.IDs, 0, "deleted course should not match anymore")
}
