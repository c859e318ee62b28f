package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notehub/errors"
)

func TestCourseService_Create(t *testing.T) {
	f := createServices(t)

	_, err := f.courseService.Create(CourseCreate{ExternalID: "crs_jedi", Name: "jedi", CreatorAuthID: "auth|ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	luke := f.createUser(t, "auth|luke", "lukesky")
	course := f.createCourse(t, "crs_jedi", "jedi", "auth|luke")
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, luke.ID, course.CreatorID)

	creator, err := f.users.Get(luke.ID)
	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, []string{course.ID}, creator.Courses)

	details, err := f.courseService.Details("crs_jedi")
	require.NoError(t, err)
	assert.Equal(t, course.ID, details.Course.ID)
	require.NotNil(t, details.Creator)
	assert.Equal(t, luke.ID, details.Creator.ID)
	assert.Empty(t, details.Members)

	_, err = f.courseService.Details("crs_ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCourseService_Create_UsernameTaken(t *testing.T) {
	f := createServices(t)

	f.createUser(t, "auth|luke", "lukesky")
	f.createCourse(t, "crs_jedi", "jedi", "auth|luke")

	_, err := f.courseService.Create(CourseCreate{
		ExternalID:    "crs_jedi2",
		Name:          "jedi again",
		Username:      "jedi",
		CreatorAuthID: "auth|luke",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err), "course usernames are unique")

	_, err = f.courseService.Details("crs_jedi2")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "the conflicting create should not have saved anything")

	f.createCourse(t, "crs_pod", "podracing", "auth|luke")
	_, err = f.courseService.Update("crs_pod", "pod", "jedi", "")
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err), "updates cannot steal another course's username")
}

func TestCourseService_Membership(t *testing.T) {
	f := createServices(t)

	f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")
	course := f.createCourse(t, "crs_jedi", "jedi", "auth|luke")

	_, err := f.courseService.AddMember("crs_ghost", "auth|anakin")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = f.courseService.AddMember("crs_jedi", "auth|ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	updated, err := f.courseService.AddMember("crs_jedi", "auth|anakin")
	require.NoError(t, err)
	assert.Equal(t, []string{anakin.ID}, updated.Members)

	member, err := f.users.Get(anakin.ID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, []string{course.ID}, member.Courses)

	_, err = f.courseService.AddMember("crs_jedi", "auth|anakin")
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	saved, err := f.courses.Get(course.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []string{anakin.ID}, saved.Members, "a conflict should leave the member set untouched")

	err = f.courseService.RemoveMember("auth|anakin", "crs_jedi")
	require.NoError(t, err)

	saved, err = f.courses.Get(course.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved.Members)

	member, err = f.users.Get(anakin.ID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Empty(t, member.Courses)

	err = f.courseService.RemoveMember("auth|anakin", "crs_jedi")
	require.NoError(t, err, "removing a non-member should be a no-op")
}

func TestCourseService_Posts(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")
	course := f.createCourse(t, "crs_jedi", "jedi", "auth|luke")

	note := f.createNote(t, "use the force", luke.ID, course.ID)
	_, err := f.noteService.Comment(note.ID, "i will", anakin.ID)
	require.NoError(t, err)

	posts, err := f.courseService.Posts("crs_jedi", 1)
	require.NoError(t, err)
	assert.Equal(t, course.ID, posts.Course.ID)
	require.Len(t, posts.Notes, 1)
	assert.Equal(t, "use the force", posts.Notes[0].Text)
	require.Len(t, posts.Notes[0].Replies, 1)
	assert.Equal(t, "i will", posts.Notes[0].Replies[0].Text)
}

func TestCourseService_Search(t *testing.T) {
	f := createServices(t)

	f.createUser(t, "auth|luke", "lukesky")
	f.createCourse(t, "crs_jedi", "jedi", "auth|luke")
	f.createCourse(t, "crs_pod", "podracing", "auth|luke")

	page, err := f.courseService.Search("", 1, 10, "")
	require.NoError(t, err)
	assert.Len(t, page.Courses, 2)
	assert.False(t, page.HasNext)

	page, err = f.courseService.Search("pod", 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "podracing", page.Courses[0].Course.Name)
}

func TestCourseService_Update(t *testing.T) {
	f := createServices(t)

	f.createUser(t, "auth|luke", "lukesky")
	f.createCourse(t, "crs_jedi", "jedi", "auth|luke")

	updated, err := f.courseService.Update("crs_jedi", "jedi masters", "jedimasters", "img.png")
	require.NoError(t, err)
	assert.Equal(t, "jedi masters", updated.Name)

	page, err := f.courseService.Search("masters", 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "jedi masters", page.Courses[0].Course.Name)

	_, err = f.courseService.Update("crs_ghost", "x", "x", "")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCourseService_Delete(t *testing.T) {
	f := createServices(t)

	luke := f.createUser(t, "auth|luke", "lukesky")
	anakin := f.createUser(t, "auth|anakin", "anakinsky")
	course := f.createCourse(t, "crs_jedi", "jedi", "auth|luke")
	_, err := f.courseService.AddMember("crs_jedi", "auth|anakin")
	require.NoError(t, err)

	note := f.createNote(t, "use the force", luke.ID, course.ID)
	kept := f.createNote(t, "unrelated", anakin.ID, "")

	err = f.courseService.Delete("crs_ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = f.courseService.Delete("crs_jedi")
	require.NoError(t, err)

	_, err = f.courseService.Details("crs_jedi")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	deleted, err := f.notes.Get(note.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted, "the course's notes should be deleted with it")

	remaining, err := f.notes.Get(kept.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining, "notes outside the course should survive")

	for _, id := range []string{luke.ID, anakin.ID} {
		user, err := f.users.Get(id)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Empty(t, user.Courses, "user %s should not reference the deleted course", id)
	}

	page, err := f.courseService.Search("jedi", 1, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Courses)
}
