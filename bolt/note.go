package bolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notehub"
)

type NoteRepository struct {
	Driver *Driver
}

func (r *NoteRepository) Get(id string) (*notehub.Note, error) {
	var note *notehub.Note
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		note = &notehub.Note{}
		return json.Unmarshal(data, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *NoteRepository) List(ids ...string) ([]*notehub.Note, error) {
	notes := make([]*notehub.Note, 0, len(ids))
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}

			var note notehub.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			notes = append(notes, &note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *NoteRepository) ListTopLevel(limit, offset uint64) ([]*notehub.Note, uint64, error) {
	topLevel := make([]notehub.Note, 0)
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note notehub.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			if note.IsTopLevel() {
				topLevel = append(topLevel, note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
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
	notes := make([]*notehub.Note, 0)
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note notehub.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			if note.AuthorID == authorID {
				note := note
				notes = append(notes, &note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}

func (r *NoteRepository) Upsert(note *notehub.Note) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		if note.ID == "" {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			note.ID = strconv.FormatUint(id, 10)
		}

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(note.ID), data)
	})
}

func (r *NoteRepository) Delete(id string) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)
		return bucket.Delete([]byte(id))
	})
}

func (r *NoteRepository) DeleteByCourse(courseID string) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		// Collect first: deleting while cursoring skips entries.
		ids := make([][]byte, 0)
		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note notehub.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			if note.CourseID == courseID {
				key := make([]byte, len(id))
				copy(key, id)
				ids = append(ids, key)
			}
		}

		for _, id := range ids {
			if err := bucket.Delete(id); err != nil {
				return err
			}
		}
		return nil
	})
}
