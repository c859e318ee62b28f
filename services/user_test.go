package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub/errors"
)

func TestUserService_Upsert(t *testing.T) {
	f := createServices(t)

	user, err := f.userService.Get("auth|luke")
	require.NoError(t, err)
	assert.Nil(t, user, "unknown users should resolve to nil, not an error")

	created, err := f.userService.Upsert(UserUpdate{
		AuthID:   "auth|luke",
		Username: "LukeSky",
		Name:     "Luke Skywalker",
		Bio:      "jedi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "lukesky", created.Username, "usernames should be lowercased")
	assert.True(t, created.Onboarded)

	updated, err := f.userService.Upsert(UserUpdate{
		AuthID:   "auth|luke",
		Username: "LukeSky",
		Name:     "Luke S.",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "upserting the same auth id should not create a second user")
	assert.Equal(t, "Luke S.", updated.Name)

	user, err = f.userService.Get("auth|luke")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Luke S.", user.Name)
}

func TestUserService_Upsert_UsernameTaken(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "LukeSky")

	_, err := f.userService.Upsert(UserUpdate{
		AuthID:   "auth|impostor",
		Username: "lukesky",
		Name:     "Not Luke",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err), "usernames are unique, case-insensitively")

	impostor, err := f.userService.Get("auth|impostor")
	require.NoError(t, err)
	assert.Nil(t, impostor, "the conflicting upsert should not have saved anything")

	// The holder can keep their own username across updates.
	kept, err := f.userService.Upsert(UserUpdate{
		AuthID:   "auth|luke",
		Username: "LUKESKY",
		Name:     "Luke S.",
	})
	require.NoError(t, err)
	assert.Equal(t, luke.ID, kept.ID)
	assert.Equal(t, "lukesky", kept.Username)
}

func TestUserService_Search(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	f.createUser(t, "auth|anakin", "anakinsky")
	f.createUser(t, "auth|sam", "pizzaiolo")

	page, err := f.userService.Search("auth|luke", "", 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Users, 2, "the caller should not appear in the results")
	for _, user := range page.Users {
		assert.NotEqual(t, luke.ID, user.ID)
	}
	assert.False(t, page.HasNext)

	page, err = f.userService.Search("auth|sam", "sky", 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Users, 2)

	page, err = f.userService.Search("auth|sam", "sky", 1, 1, "")
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.True(t, page.HasNext)

	page, err = f.userService.Search("auth|sam", "sky", 2, 1, "")
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.False(t, page.HasNext)
}

func TestUserService_Notes(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")

	note := f.createNote(t, "hello there", luke.ID, "")
	_, err := f.noteService.Comment(note.ID, "general kenobi", anakin.ID)
	require.NoError(t, err)

	_, err = f.userService.Notes("auth|unknown", DefaultReplyDepth)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	profile, err := f.userService.Notes("auth|luke", DefaultReplyDepth)
	require.NoError(t, err)
	assert.Equal(t, luke.ID, profile.User.ID)
	require.Len(t, profile.Notes, 1, "comments should not appear in the author's own notes")
	assert.Equal(t, "hello there", profile.Notes[0].Text)
	require.Len(t, profile.Notes[0].Replies, 1)
	assert.Equal(t, "general kenobi", profile.Notes[0].Replies[0].Text)
	require.NotNil(t, profile.Notes[0].Replies[0].Author)
	assert.Equal(t, anakin.ID, profile.Notes[0].Replies[0].Author.ID)

	profile, err = f.userService.Notes("auth|luke", 0)
	require.NoError(t, err)
	require.Len(t, profile.Notes, 1)
	assert.Empty(t, profile.Notes[0].Replies, "depth 0 should not resolve replies")
}

func TestUserService_Activity(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")

	note := f.createNote(t, "hello there", luke.ID, "")
	_, err := f.noteService.Comment(note.ID, "general kenobi", anakin.ID)
	require.NoError(t, err)
	_, err = f.noteService.Comment(note.ID, "replying to myself", luke.ID)
	require.NoError(t, err)

	activity, err := f.userService.Activity(luke.ID)
	require.NoError(t, err)
	require.Len(t, activity, 1, "own replies should not count as activity")
	assert.Equal(t, "general kenobi", activity[0].Text)
	require.NotNil(t, activity[0].Author)
	assert.Equal(t, anakin.ID, activity[0].Author.ID)

	activity, err = f.userService.Activity(anakin.ID)
	require.NoError(t, err)
	assert.Empty(t, activity)
}
