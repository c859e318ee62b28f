package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/inmem"
	"github.com/bobinette/notehub/log"
)

type fixture struct {
	users   *inmem.UserRepository
	notes   *inmem.NoteRepository
	courses *inmem.CourseRepository

	userService   *UserService
	noteService   *NoteService
	courseService *CourseService
}

func createServices(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:   inmem.NewUserRepository(),
		notes:   inmem.NewNoteRepository(),
		courses: inmem.NewCourseRepository(),
	}

	logger := log.NewSilent()
	f.userService = NewUserService(f.users, f.notes, inmem.NewUserIndex(), logger)
	f.noteService = NewNoteService(f.notes, f.users, f.courses, logger)
	f.courseService = NewCourseService(f.courses, f.users, f.notes, inmem.NewCourseIndex(), logger)
	return f
}

func (f *fixture) createUser(t *testing.T, authID, username string) notehub.User {
	t.Helper()

	user, err := f.userService.Upsert(UserUpdate{
		AuthID:   authID,
		Username: username,
		Name:     username,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createNote(t *testing.T, text, authorID, courseID string) notehub.Note {
	t.Helper()

	note, err := f.noteService.Create(NoteCreate{
		Text:     text,
		AuthorID: authorID,
		CourseID: courseID,
	})
	require.NoError(t, err)
	return note
}

func (f *fixture) createCourse(t *testing.T, externalID, name, creatorAuthID string) notehub.Course {
	t.Helper()

	course, err := f.courseService.Create(CourseCreate{
		ExternalID:    externalID,
		Name:          name,
		Username:      name,
		CreatorAuthID: creatorAuthID,
	})
	require.NoError(t, err)
	return course
}
