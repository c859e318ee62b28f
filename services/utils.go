package services

import (
	"fmt"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/errors"
)

// DefaultReplyDepth is how deep callers usually want reply trees
// resolved: replies and their direct replies. Every operation still
// takes the depth explicitly.
const DefaultReplyDepth = 2

const defaultPageSize = 20

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id string) error {
	return errors.New(fmt.Sprintf("<User %s> not found", id), errors.NotFound())
}

// errNoteNotFound returns a 404 for when a note could not be found.
func errNoteNotFound(id string) error {
	return errors.New(fmt.Sprintf("<Note %s> not found", id), errors.NotFound())
}

// errCourseNotFound returns a 404 for when a course could not be found.
func errCourseNotFound(id string) error {
	return errors.New(fmt.Sprintf("<Course %s> not found", id), errors.NotFound())
}

// errUsernameTaken returns a 409 for when a username is already held
// by another record.
func errUsernameTaken(username string) error {
	return errors.New(fmt.Sprintf("username %q is already taken", username), errors.Conflict())
}

// errAlreadyMember returns a 409 for when a membership already exists.
func errAlreadyMember(userID, courseID string) error {
	return errors.New(
		fmt.Sprintf("<User %s> is already a member of <Course %s>", userID, courseID),
		errors.Conflict(),
	)
}

// resolveNotes expands notes into display trees: the author is always
// resolved, and replies are resolved recursively depth levels down.
// Authors that no longer exist resolve to nil instead of failing the
// whole expansion.
func resolveNotes(users notehub.UserRepository, notes notehub.NoteRepository, ns []*notehub.Note, depth int) ([]notehub.NoteTree, error) {
	trees := make([]notehub.NoteTree, 0, len(ns))
	for _, note := range ns {
		tree, err := resolveNote(users, notes, note, depth)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

func resolveNote(users notehub.UserRepository, notes notehub.NoteRepository, note *notehub.Note, depth int) (notehub.NoteTree, error) {
	author, err := users.Get(note.AuthorID)
	if err != nil {
		return notehub.NoteTree{}, err
	}

	tree := notehub.NoteTree{
		Note:    *note,
		Author:  author,
		Replies: []notehub.NoteTree{},
	}

	if depth <= 0 || len(note.Children) == 0 {
		return tree, nil
	}

	children, err := notes.List(note.Children...)
	if err != nil {
		return notehub.NoteTree{}, err
	}

	tree.Replies, err = resolveNotes(users, notes, children, depth-1)
	if err != nil {
		return notehub.NoteTree{}, err
	}
	return tree, nil
}

func normalizePage(page, pageSize int) (uint64, uint64) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return uint64(pageSize), uint64(page-1) * uint64(pageSize)
}

func contains(ids []string, id string) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, i := range ids {
		if i != id {
			kept = append(kept, i)
		}
	}
	return kept
}
