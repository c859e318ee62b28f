package surreal

import (
	"github.com/surrealdb/surrealdb.go"

	"github.com/bobinette/notehub"
)

type NoteRepository struct {
	Driver *Driver
}

// topLevelFilter matches notes without a parent, whether the field was
// never written or holds the empty string.
const topLevelFilter = "(parentId = NONE OR parentId = '')"

func (r *NoteRepository) Get(id string) (*notehub.Note, error) {
	note, err := surrealdb.SmartUnmarshal[notehub.Note](r.Driver.db.Select(id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) List(ids ...string) ([]*notehub.Note, error) {
	notes := make([]*notehub.Note, 0, len(ids))
	for _, id := range ids {
		note, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if note != nil {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (r *NoteRepository) ListTopLevel(limit, offset uint64) ([]*notehub.Note, uint64, error) {
	sql := "SELECT * FROM note WHERE " + topLevelFilter + " ORDER BY createdAt DESC"
	vars := map[string]interface{}{}
	if limit > 0 {
		sql += " LIMIT $limit START $start"
		vars["limit"] = limit
		vars["start"] = offset
	}

	notes, err := surrealdb.SmartUnmarshal[[]notehub.Note](r.Driver.db.Query(sql, vars))
	if err != nil && !isNoRow(err) {
		return nil, 0, err
	}

	counts, err := surrealdb.SmartUnmarshal[[]struct {
		Count uint64 `json:"count"`
	}](r.Driver.db.Query(
		"SELECT count() FROM note WHERE "+topLevelFilter+" GROUP ALL",
		nil,
	))
	if err != nil && !isNoRow(err) {
		return nil, 0, err
	}

	var total uint64
	if len(counts) > 0 {
		total = counts[0].Count
	}

	page := make([]*notehub.Note, len(notes))
	for i := range notes {
		page[i] = &notes[i]
	}
	return page, total, nil
}

func (r *NoteRepository) ListByAuthor(authorID string) ([]*notehub.Note, error) {
	notes, err := surrealdb.SmartUnmarshal[[]notehub.Note](r.Driver.db.Query(
		"SELECT * FROM note WHERE author = $author ORDER BY createdAt",
		map[string]interface{}{"author": authorID},
	))
	if err != nil {
		if isNoRow(err) {
			return []*notehub.Note{}, nil
		}
		return nil, err
	}

	all := make([]*notehub.Note, len(notes))
	for i := range notes {
		all[i] = &notes[i]
	}
	return all, nil
}

func (r *NoteRepository) Upsert(note *notehub.Note) error {
	if note.ID == "" {
		note.ID = newID("note")
		_, err := r.Driver.db.Create(note.ID, note)
		return err
	}

	_, err := r.Driver.db.Update(note.ID, note)
	return err
}

func (r *NoteRepository) Delete(id string) error {
	_, err := r.Driver.db.Delete(id)
	return err
}

func (r *NoteRepository) DeleteByCourse(courseID string) error {
	_, err := r.Driver.db.Query(
		"DELETE note WHERE courseId = $courseId",
		map[string]interface{}{"courseId": courseID},
	)
	return err
}
