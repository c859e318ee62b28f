package inmem

import (
	"sort"
	"strconv"
	"sync"

	"github.com/bobinette/notehub"
)

type CourseRepository struct {
	mu      sync.Mutex
	courses map[string]notehub.Course
	maxID   int
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]notehub.Course),
	}
}

func (r *CourseRepository) Get(id string) (*notehub.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (r *CourseRepository) GetByExternalID(externalID string) (*notehub.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.courses {
		if course.ExternalID == externalID {
			course := course
			return &course, nil
		}
	}
	return nil, nil
}

func (r *CourseRepository) GetByUsername(username string) (*notehub.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.courses {
		if course.Username == username {
			course := course
			return &course, nil
		}
	}
	return nil, nil
}

func (r *CourseRepository) List(ids ...string) ([]*notehub.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := make([]*notehub.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := r.courses[id]; ok {
			course := course
			courses = append(courses, &course)
		}
	}
	return courses, nil
}

func (r *CourseRepository) All() ([]*notehub.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := make([]*notehub.Course, 0, len(r.courses))
	for _, course := range r.courses {
		course := course
		courses = append(courses, &course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *CourseRepository) Upsert(course *notehub.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		r.maxID++
		course.ID = strconv.Itoa(r.maxID)
	}

	r.courses[course.ID] = *course
	return nil
}

func (r *CourseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.courses, id)
	return nil
}
