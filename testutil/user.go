package testutil

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub"
)

// TestUserRepository runs the user repository contract against any
// implementation.
func TestUserRepository(t *testing.T, repo notehub.UserRepository) {
	users := []*notehub.User{
		{
			AuthID:   "auth-1",
			Username: "pizza",
			Name:     "Pizza Yolo",
			Bio:      "I like pizza",
		},
		{
			AuthID:    "auth-2",
			Username:  "yolo",
			Name:      "Yolo",
			Onboarded: true,
			Notes:     []string{"n1", "n10"},
			Courses:   []string{"c1"},
		},
	}

	testInsertUsers(t, repo, users)

	for i, user := range users {
		testGetUser(t, repo, user.ID, user, fmt.Sprintf("get user %d", i))
	}

	testGetUserByAuthID(t, repo, users[1].AuthID, users[1], "get by auth id")
	testGetUserByUsername(t, repo, users[0].Username, users[0], "get by username")

	// Missing records come back nil, not as errors
	missing, err := repo.Get("no-such-user")
	require.NoError(t, err, "get on a missing id should not fail")
	assert.Nil(t, missing, "get on a missing id should return nil")

	missing, err = repo.GetByAuthID("no-such-auth-id")
	require.NoError(t, err, "get on a missing auth id should not fail")
	assert.Nil(t, missing, "get on a missing auth id should return nil")

	missing, err = repo.GetByUsername("no-such-username")
	require.NoError(t, err, "get on a missing username should not fail")
	assert.Nil(t, missing, "get on a missing username should return nil")

	// Update
	users[0].Bio = "I like calzone better"
	users[0].Onboarded = true
	users[0].Notes = []string{"n2"}
	testUpdateUser(t, repo, users[0])
	testGetUser(t, repo, users[0].ID, users[0], "get after update")

	// List skips missing ids
	listed, err := repo.List(users[0].ID, "no-such-user", users[1].ID)
	require.NoError(t, err, "list should not fail")
	require.Len(t, listed, 2, "list should skip missing ids")

	// All
	all, err := repo.All()
	require.NoError(t, err, "all should not fail")
	require.Len(t, all, len(users), "all should return every user")

	// Delete
	err = repo.Delete(users[1].ID)
	require.NoError(t, err, "delete should not fail")

	deleted, err := repo.Get(users[1].ID)
	require.NoError(t, err, "get after delete should not fail")
	assert.Nil(t, deleted, "user should be gone after delete")
}

func testInsertUsers(t *testing.T, repo notehub.UserRepository, users []*notehub.User) {
	ids := make([]string, len(users))
	for i, user := range users {
		err := repo.Upsert(user)
		require.NoError(t, err, "insert %s must not fail", user.Username)
		require.NotEqual(t, "", user.ID, "id must be set by insert")
		ids[i] = user.ID
	}

	sort.Strings(ids)
	for i := 0; i < len(ids)-1; i++ {
		require.NotEqual(t, ids[i], ids[i+1], "all ids must be different")
	}
}

func testGetUser(t *testing.T, repo notehub.UserRepository, id string, expected *notehub.User, name string) {
	user, err := repo.Get(id)
	if assert.NoError(t, err, "%s - getting user should not fail", name) {
		require.NotNil(t, user, "%s - user should be found", name)
		assertUser(t, expected, user, name)
	}
}

func testGetUserByAuthID(t *testing.T, repo notehub.UserRepository, authID string, expected *notehub.User, name string) {
	user, err := repo.GetByAuthID(authID)
	if assert.NoError(t, err, "%s - getting user by auth id should not fail", name) {
		require.NotNil(t, user, "%s - user should be found", name)
		assertUser(t, expected, user, name)
	}
}

func testGetUserByUsername(t *testing.T, repo notehub.UserRepository, username string, expected *notehub.User, name string) {
	user, err := repo.GetByUsername(username)
	if assert.NoError(t, err, "%s - getting user by username should not fail", name) {
		require.NotNil(t, user, "%s - user should be found", name)
		assertUser(t, expected, user, name)
	}
}

func testUpdateUser(t *testing.T, repo notehub.UserRepository, user *notehub.User) {
	id := user.ID
	err := repo.Upsert(user)
	assert.NoError(t, err, "%s - update should not have failed", user.Username)
	assert.Equal(t, id, user.ID, "id should not change")
}

func assertUser(t *testing.T, expected, actual *notehub.User, name string) {
	assert.Equal(t, expected.ID, actual.ID, "%s - ids should be equal", name)
	assert.Equal(t, expected.AuthID, actual.AuthID, "%s - auth ids should be equal", name)
	assert.Equal(t, expected.Username, actual.Username, "%s - usernames should be equal", name)
	assert.Equal(t, expected.Name, actual.Name, "%s - names should be equal", name)
	assert.Equal(t, expected.Bio, actual.Bio, "%s - bios should be equal", name)
	assert.Equal(t, expected.Onboarded, actual.Onboarded, "%s - onboarded flags should be equal", name)

	assertIDSet(t, expected.Notes, actual.Notes, name+" - notes")
	assertIDSet(t, expected.Courses, actual.Courses, name+" - courses")
}

func assertIDSet(t *testing.T, expected, actual []string, name string) {
	if !assert.Equal(t, len(expected), len(actual), "%s - lengths should be equal", name) {
		return
	}
	for _, id := range expected {
		assert.Contains(t, actual, id, "%s - %s should be present", name, id)
	}
}
