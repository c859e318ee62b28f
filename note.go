package notehub

import (
	"time"
)

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	AuthorID string `json:"author"`
	CourseID string `json:"courseId,omitempty"`

	// ParentID is empty for top-level notes, and holds the id of the
	// note being replied to otherwise.
	ParentID string   `json:"parentId,omitempty"`
	Children []string `json:"children"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsTopLevel reports whether the note belongs in the home feed.
func (n Note) IsTopLevel() bool {
	return n.ParentID == ""
}

type NoteRepository interface {
	// Get returns nil when no note has the given id.
	Get(id string) (*Note, error)
	// List returns the notes matching the given ids, skipping missing ones.
	List(ids ...string) ([]*Note, error)
	// ListTopLevel returns a page of top-level notes sorted by creation
	// time, most recent first, along with the total number of top-level
	// notes in the store.
	ListTopLevel(limit, offset uint64) ([]*Note, uint64, error)
	ListByAuthor(authorID string) ([]*Note, error)
	// Upsert assigns an id when the note does not have one yet.
	Upsert(*Note) error
	Delete(id string) error
	DeleteByCourse(courseID string) error
}

// NoteTree is a note with its author and replies resolved for display.
// Author is nil when the referenced user no longer exists, and takes
// the place of the author id when serialized.
type NoteTree struct {
	Note
	Author  *User      `json:"author"`
	Replies []NoteTree `json:"replies"`
}
