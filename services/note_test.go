package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub/errors"
)

func TestNoteService_Create(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")

	_, err := f.noteService.Create(NoteCreate{Text: "   ", AuthorID: luke.ID})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Code(err))

	_, err = f.noteService.Create(NoteCreate{Text: "hello", AuthorID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = f.noteService.Create(NoteCreate{Text: "hello", AuthorID: luke.ID, CourseID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	note, err := f.noteService.Create(NoteCreate{Text: "hello there", AuthorID: luke.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.True(t, note.IsTopLevel())
	assert.False(t, note.CreatedAt.IsZero())

	author, err := f.users.Get(luke.ID)
	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Equal(t, []string{note.ID}, author.Notes)
}

func TestNoteService_Create_InCourse(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	course := f.createCourse(t, "crs_jedi", "jedi", "auth|luke")

	note := f.createNote(t, "use the force", luke.ID, course.ID)
	assert.Equal(t, course.ID, note.CourseID)

	saved, err := f.courses.Get(course.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []string{note.ID}, saved.Notes)
}

func TestNoteService_Feed(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")

	first := f.createNote(t, "hello there", luke.ID, "")
	second := f.createNote(t, "it's over", anakin.ID, "")
	third := f.createNote(t, "i have the high ground", anakin.ID, "")

	_, err := f.noteService.Comment(first.ID, "general kenobi", anakin.ID)
	require.NoError(t, err)

	page, err := f.noteService.Feed(1, 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Notes, 2, "comments should not appear in the feed")
	assert.Equal(t, third.ID, page.Notes[0].ID, "the feed should be newest first")
	assert.Equal(t, second.ID, page.Notes[1].ID)
	assert.Equal(t, uint64(3), page.Pagination.Total)
	assert.True(t, page.HasNext)

	page, err = f.noteService.Feed(2, 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Notes, 1)
	assert.Equal(t, first.ID, page.Notes[0].ID)
	assert.False(t, page.HasNext)
	require.Len(t, page.Notes[0].Replies, 1)
	assert.Equal(t, "general kenobi", page.Notes[0].Replies[0].Text)
}

func TestNoteService_Get(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")

	note := f.createNote(t, "hello there", luke.ID, "")
	reply, err := f.noteService.Comment(note.ID, "general kenobi", anakin.ID)
	require.NoError(t, err)
	_, err = f.noteService.Comment(reply.ID, "so uncivilized", luke.ID)
	require.NoError(t, err)

	_, err = f.noteService.Get("ghost", DefaultReplyDepth)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	tree, err := f.noteService.Get(note.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "hello there", tree.Text)
	require.NotNil(t, tree.Author)
	assert.Equal(t, luke.ID, tree.Author.ID)
	require.Len(t, tree.Replies, 1)
	require.Len(t, tree.Replies[0].Replies, 1)
	assert.Equal(t, "so uncivilized", tree.Replies[0].Replies[0].Text)

	tree, err = f.noteService.Get(note.ID, 1)
	require.NoError(t, err)
	require.Len(t, tree.Replies, 1)
	assert.Empty(t, tree.Replies[0].Replies, "depth 1 should stop at direct replies")
}

func TestNoteService_Comment(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")
	note := f.createNote(t, "hello there", luke.ID, "")

	_, err := f.noteService.Comment("ghost", "hi", anakin.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = f.noteService.Comment(note.ID, "hi", "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = f.noteService.Comment(note.ID, "", anakin.ID)
	require.Error(t, err)
	assert.Equal(t, 400, errors.Code(err))

	comment, err := f.noteService.Comment(note.ID, "general kenobi", anakin.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, comment.ParentID)
	assert.False(t, comment.IsTopLevel())

	parent, err := f.notes.Get(note.ID)
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, []string{comment.ID}, parent.Children)

	author, err := f.users.Get(anakin.ID)
	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Empty(t, author.Notes, "comments should not be added to the author's notes")
}
