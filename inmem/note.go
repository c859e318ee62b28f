package inmem

import (
	"sort"
	"strconv"
	"sync"

	"github.com/bobinette/notehub"
)

type NoteRepository struct {
	mu    sync.Mutex
	notes map[string]notehub.Note
	maxID int
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes: make(map[string]notehub.Note),
	}
}

func (r *NoteRepository) Get(id string) (*notehub.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (r *NoteRepository) List(ids ...string) ([]*notehub.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*notehub.Note, 0, len(ids))
	for _, id := range ids {
		if note, ok := r.notes[id]; ok {
			note := note
			notes = append(notes, &note)
		}
	}
	return notes, nil
}

func (r *NoteRepository) ListTopLevel(limit, offset uint64) ([]*notehub.Note, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	topLevel := make([]notehub.Note, 0)
	for _, note := range r.notes {
		if note.IsTopLevel() {
			topLevel = append(topLevel, note)
		}
	}

	// Most recent first, ties broken on id to keep pages stable.
	sort.Slice(topLevel, func(i, j int) bool {
		if !topLevel[i].CreatedAt.Equal(topLevel[j].CreatedAt) {
			return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
		}
		return topLevel[i].ID > topLevel[j].ID
	})

	total := uint64(len(topLevel))
	if offset >= total {
		return []*notehub.Note{}, total, nil
	}

	end := offset + limit
	if limit == 0 || end > total {
		end = total
	}

	notes := make([]*notehub.Note, 0, end-offset)
	for _, note := range topLevel[offset:end] {
		note := note
		notes = append(notes, &note)
	}
	return notes, total, nil
}

func (r *NoteRepository) ListByAuthor(authorID string) ([]*notehub.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*notehub.Note, 0)
	for _, note := range r.notes {
		if note.AuthorID == authorID {
			note := note
			notes = append(notes, &note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}

func (r *NoteRepository) Upsert(note *notehub.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == "" {
		r.maxID++
		note.ID = strconv.Itoa(r.maxID)
	}

	r.notes[note.ID] = *note
	return nil
}

func (r *NoteRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notes, id)
	return nil
}

func (r *NoteRepository) DeleteByCourse(courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, note := range r.notes {
		if note.CourseID == courseID {
			delete(r.notes, id)
		}
	}
	return nil
}
