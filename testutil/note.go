package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub"
)

// TestNoteRepository runs the note repository contract against any
// implementation.
func TestNoteRepository(t *testing.T, repo notehub.NoteRepository) {
	base := time.Date(2023, time.September, 12, 10, 0, 0, 0, time.UTC)

	notes := []*notehub.Note{
		{Text: "hello world", AuthorID: "u1", CreatedAt: base},
		{Text: "second post", AuthorID: "u1", CreatedAt: base.Add(time.Minute)},
		{Text: "course post", AuthorID: "u2", CourseID: "c1", CreatedAt: base.Add(2 * time.Minute)},
	}

	for _, note := range notes {
		err := repo.Upsert(note)
		require.NoError(t, err, "insert must not fail")
		require.NotEqual(t, "", note.ID, "id must be set by insert")
	}

	// A reply is not top-level
	reply := &notehub.Note{
		Text:      "nice!",
		AuthorID:  "u2",
		ParentID:  notes[0].ID,
		CreatedAt: base.Add(3 * time.Minute),
	}
	err := repo.Upsert(reply)
	require.NoError(t, err, "insert reply must not fail")

	notes[0].Children = []string{reply.ID}
	require.NoError(t, repo.Upsert(notes[0]), "updating parent children must not fail")

	// Get
	retrieved, err := repo.Get(notes[0].ID)
	require.NoError(t, err, "get should not fail")
	require.NotNil(t, retrieved, "note should be found")
	assert.Equal(t, notes[0].Text, retrieved.Text, "text should be equal")
	assert.Equal(t, []string{reply.ID}, retrieved.Children, "children should be equal")

	missing, err := repo.Get("no-such-note")
	require.NoError(t, err, "get on a missing id should not fail")
	assert.Nil(t, missing, "get on a missing id should return nil")

	// List skips missing ids
	listed, err := repo.List(notes[0].ID, "no-such-note", reply.ID)
	require.NoError(t, err, "list should not fail")
	require.Len(t, listed, 2, "list should skip missing ids")

	// Top-level listing: replies excluded, most recent first, total counts
	// every top-level note regardless of the page size
	page, total, err := repo.ListTopLevel(2, 0)
	require.NoError(t, err, "list top level should not fail")
	assert.Equal(t, uint64(3), total, "total should count all top-level notes")
	require.Len(t, page, 2, "page size should be honored")
	assert.Equal(t, notes[2].ID, page[0].ID, "most recent note should come first")
	assert.Equal(t, notes[1].ID, page[1].ID, "notes should be sorted by creation time desc")

	page, total, err = repo.ListTopLevel(2, 2)
	require.NoError(t, err, "list top level with offset should not fail")
	assert.Equal(t, uint64(3), total, "total should not depend on the offset")
	require.Len(t, page, 1, "last page should hold the remainder")
	assert.Equal(t, notes[0].ID, page[0].ID, "oldest note should come last")

	page, _, err = repo.ListTopLevel(2, 10)
	require.NoError(t, err, "list top level past the end should not fail")
	assert.Len(t, page, 0, "page past the end should be empty")

	// By author
	byAuthor, err := repo.ListByAuthor("u1")
	require.NoError(t, err, "list by author should not fail")
	require.Len(t, byAuthor, 2, "u1 has two notes")

	byAuthor, err = repo.ListByAuthor("u2")
	require.NoError(t, err, "list by author should not fail")
	require.Len(t, byAuthor, 2, "u2 has a note and a reply")

	// Cascade helpers
	err = repo.DeleteByCourse("c1")
	require.NoError(t, err, "delete by course should not fail")

	gone, err := repo.Get(notes[2].ID)
	require.NoError(t, err, "get after delete by course should not fail")
	assert.Nil(t, gone, "course note should be gone")

	_, total, err = repo.ListTopLevel(10, 0)
	require.NoError(t, err, "list top level should not fail")
	assert.Equal(t, uint64(2), total, "total should shrink after the cascade")

	err = repo.Delete(reply.ID)
	require.NoError(t, err, "delete should not fail")
	gone, err = repo.Get(reply.ID)
	require.NoError(t, err, "get after delete should not fail")
	assert.Nil(t, gone, "reply should be gone after delete")
}
