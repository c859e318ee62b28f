package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/log"
)

// NoteService exposes the note operations: the public feed, single
// note retrieval, creation and commenting.
type NoteService struct {
	notes   notehub.NoteRepository
	users   notehub.UserRepository
	courses notehub.CourseRepository
	logger  log.Logger
}

func NewNoteService(notes notehub.NoteRepository, users notehub.UserRepository, courses notehub.CourseRepository, logger log.Logger) *NoteService {
	return &NoteService{
		notes:   notes,
		users:   users,
		courses: courses,
		logger:  logger,
	}
}

// NoteCreate is the payload accepted by Create.
type NoteCreate struct {
	Text     string `json:"text"`
	AuthorID string `json:"author"`
	CourseID string `json:"courseId"`
}

// NotePage is a page of the top-level feed.
type NotePage struct {
	Notes      []notehub.NoteTree `json:"notes"`
	Pagination notehub.Pagination `json:"pagination"`
	HasNext    bool               `json:"hasNext"`
}

// Create saves a new top-level note and links it to its author, and
// to its course when one is given.
func (s *NoteService) Create(p NoteCreate) (notehub.Note, error) {
	if strings.TrimSpace(p.Text) == "" {
		return notehub.Note{}, errors.New("a note needs a text", errors.BadRequest())
	}

	author, err := s.users.Get(p.AuthorID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", p.AuthorID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to fetch user %s", p.AuthorID), errors.WithCause(err))
	} else if author == nil {
		return notehub.Note{}, errUserNotFound(p.AuthorID)
	}

	var course *notehub.Course
	if p.CourseID != "" {
		course, err = s.courses.Get(p.CourseID)
		if err != nil {
			s.logger.Errorf("could not fetch course %s: %v", p.CourseID, err)
			return notehub.Note{}, errors.New(fmt.Sprintf("failed to fetch course %s", p.CourseID), errors.WithCause(err))
		} else if course == nil {
			return notehub.Note{}, errCourseNotFound(p.CourseID)
		}
	}

	note := notehub.Note{
		Text:      p.Text,
		AuthorID:  p.AuthorID,
		CourseID:  p.CourseID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notes.Upsert(&note); err != nil {
		s.logger.Errorf("could not save note: %v", err)
		return notehub.Note{}, errors.New("failed to save note", errors.WithCause(err))
	}

	// Separate writes: a failure here leaves the note saved but
	// unlinked.
	author.Notes = append(author.Notes, note.ID)
	if err := s.users.Upsert(author); err != nil {
		s.logger.Errorf("could not link note %s to user %s: %v", note.ID, author.ID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to link note %s to its author", note.ID), errors.WithCause(err))
	}

	if course != nil {
		course.Notes = append(course.Notes, note.ID)
		if err := s.courses.Upsert(course); err != nil {
			s.logger.Errorf("could not link note %s to course %s: %v", note.ID, course.ID, err)
			return notehub.Note{}, errors.New(fmt.Sprintf("failed to link note %s to its course", note.ID), errors.WithCause(err))
		}
	}
	return note, nil
}

// Feed pages through top-level notes, newest first, with replies
// resolved depth levels down.
func (s *NoteService) Feed(page, pageSize, depth int) (NotePage, error) {
	limit, offset := normalizePage(page, pageSize)

	notes, total, err := s.notes.ListTopLevel(limit, offset)
	if err != nil {
		s.logger.Errorf("could not fetch feed: %v", err)
		return NotePage{}, errors.New("failed to fetch feed", errors.WithCause(err))
	}

	trees, err := resolveNotes(s.users, s.notes, notes, depth)
	if err != nil {
		s.logger.Errorf("could not resolve feed: %v", err)
		return NotePage{}, errors.New("failed to resolve feed", errors.WithCause(err))
	}

	p := notehub.Pagination{Total: total, Limit: limit, Offset: offset}
	return NotePage{
		Notes:      trees,
		Pagination: p,
		HasNext:    p.HasNext(len(trees)),
	}, nil
}

// Get retrieves a single note with its replies resolved depth levels
// down.
func (s *NoteService) Get(id string, depth int) (notehub.NoteTree, error) {
	note, err := s.notes.Get(id)
	if err != nil {
		s.logger.Errorf("could not fetch note %s: %v", id, err)
		return notehub.NoteTree{}, errors.New(fmt.Sprintf("failed to fetch note %s", id), errors.WithCause(err))
	} else if note == nil {
		return notehub.NoteTree{}, errNoteNotFound(id)
	}

	tree, err := resolveNote(s.users, s.notes, note, depth)
	if err != nil {
		s.logger.Errorf("could not resolve note %s: %v", id, err)
		return notehub.NoteTree{}, errors.New(fmt.Sprintf("failed to resolve note %s", id), errors.WithCause(err))
	}
	return tree, nil
}

// Comment saves a reply under the given note. The reply is not added
// to the author's own notes.
func (s *NoteService) Comment(noteID, text, authorID string) (notehub.Note, error) {
	if strings.TrimSpace(text) == "" {
		return notehub.Note{}, errors.New("a comment needs a text", errors.BadRequest())
	}

	parent, err := s.notes.Get(noteID)
	if err != nil {
		s.logger.Errorf("could not fetch note %s: %v", noteID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to fetch note %s", noteID), errors.WithCause(err))
	} else if parent == nil {
		return notehub.Note{}, errNoteNotFound(noteID)
	}

	author, err := s.users.Get(authorID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", authorID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to fetch user %s", authorID), errors.WithCause(err))
	} else if author == nil {
		return notehub.Note{}, errUserNotFound(authorID)
	}

	comment := notehub.Note{
		Text:      text,
		AuthorID:  authorID,
		ParentID:  noteID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notes.Upsert(&comment); err != nil {
		s.logger.Errorf("could not save comment on note %s: %v", noteID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to save comment on note %s", noteID), errors.WithCause(err))
	}

	parent.Children = append(parent.Children, comment.ID)
	if err := s.notes.Upsert(parent); err != nil {
		s.logger.Errorf("could not link comment %s to note %s: %v", comment.ID, noteID, err)
		return notehub.Note{}, errors.New(fmt.Sprintf("failed to link comment %s to its note", comment.ID), errors.WithCause(err))
	}
	return comment, nil
}
