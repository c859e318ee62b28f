package bolt

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notehub"
)

type CourseRepository struct {
	Driver *Driver
}

func (r *CourseRepository) Get(id string) (*notehub.Course, error) {
	var course *notehub.Course
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		course = &notehub.Course{}
		return json.Unmarshal(data, course)
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

func (r *CourseRepository) GetByExternalID(externalID string) (*notehub.Course, error) {
	var course *notehub.Course
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var crs notehub.Course
			if err := json.Unmarshal(data, &crs); err != nil {
				return err
			}

			if crs.ExternalID == externalID {
				course = &crs
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

func (r *CourseRepository) GetByUsername(username string) (*notehub.Course, error) {
	var course *notehub.Course
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var crs notehub.Course
			if err := json.Unmarshal(data, &crs); err != nil {
				return err
			}

			if crs.Username == username {
				course = &crs
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

func (r *CourseRepository) List(ids ...string) ([]*notehub.Course, error) {
	courses := make([]*notehub.Course, 0, len(ids))
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)

		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}

			var course notehub.Course
			if err := json.Unmarshal(data, &course); err != nil {
				return err
			}
			courses = append(courses, &course)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CourseRepository) All() ([]*notehub.Course, error) {
	courses := make([]*notehub.Course, 0)
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var course notehub.Course
			if err := json.Unmarshal(data, &course); err != nil {
				return err
			}
			courses = append(courses, &course)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CourseRepository) Upsert(course *notehub.Course) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)

		if course.ID == "" {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			course.ID = strconv.FormatUint(id, 10)
		}

		data, err := json.Marshal(course)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(course.ID), data)
	})
}

func (r *CourseRepository) Delete(id string) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(courseBucket)
		return bucket.Delete([]byte(id))
	})
}
