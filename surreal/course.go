package surreal

import (
	"github.com/surrealdb/surrealdb.go"

	"github.com/bobinette/notehub"
)

type CourseRepository struct {
	Driver *Driver
}

func (r *CourseRepository) Get(id string) (*notehub.Course, error) {
	course, err := surrealdb.SmartUnmarshal[notehub.Course](r.Driver.db.Select(id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) GetByExternalID(externalID string) (*notehub.Course, error) {
	courses, err := surrealdb.SmartUnmarshal[[]notehub.Course](r.Driver.db.Query(
		"SELECT * FROM course WHERE externalID = $externalID LIMIT 1",
		map[string]interface{}{"externalID": externalID},
	))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

func (r *CourseRepository) GetByUsername(username string) (*notehub.Course, error) {
	courses, err := surrealdb.SmartUnmarshal[[]notehub.Course](r.Driver.db.Query(
		"SELECT * FROM course WHERE username = $username LIMIT 1",
		map[string]interface{}{"username": username},
	))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

func (r *CourseRepository) List(ids ...string) ([]*notehub.Course, error) {
	courses := make([]*notehub.Course, 0, len(ids))
	for _, id := range ids {
		course, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if course != nil {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *CourseRepository) All() ([]*notehub.Course, error) {
	courses, err := surrealdb.SmartUnmarshal[[]notehub.Course](r.Driver.db.Query(
		"SELECT * FROM course ORDER BY id",
		nil,
	))
	if err != nil {
		if isNoRow(err) {
			return []*notehub.Course{}, nil
		}
		return nil, err
	}

	all := make([]*notehub.Course, len(courses))
	for i := range courses {
		all[i] = &courses[i]
	}
	return all, nil
}

func (r *CourseRepository) Upsert(course *notehub.Course) error {
	if course.ID == "" {
		course.ID = newID("course")
		_, err := r.Driver.db.Create(course.ID, course)
		return err
	}

	_, err := r.Driver.db.Update(course.ID, course)
	return err
}

func (r *CourseRepository) Delete(id string) error {
	_, err := r.Driver.db.Delete(id)
	return err
}
