package inmem

import (
	"sort"
	"strings"
	"sync"

	"github.com/bobinette/notehub"
)

// UserIndex is a naive substring index, meant for tests and dev mode.
// The production index lives in the bleve package.
type UserIndex struct {
	mu    sync.Mutex
	users map[string]notehub.User
}

func NewUserIndex() *UserIndex {
	return &UserIndex{users: make(map[string]notehub.User)}
}

func (i *UserIndex) Index(user *notehub.User) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.users[user.ID] = *user
	return nil
}

func (i *UserIndex) Delete(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.users, id)
	return nil
}

func (i *UserIndex) Search(search notehub.UserSearch) (notehub.UserSearchResults, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ids := make([]string, 0, len(i.users))
	for id, user := range i.users {
		if id == search.ExcludeID {
			continue
		}
		if matches(search.Q, user.Username, user.Name) {
			ids = append(ids, id)
		}
	}

	sortIDs(ids, search.SortBy)

	total := uint64(len(ids))
	return notehub.UserSearchResults{
		IDs: paginate(ids, search.Limit, search.Offset),
		Pagination: notehub.Pagination{
			Total:  total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

// CourseIndex is the course counterpart of UserIndex.
type CourseIndex struct {
	mu      sync.Mutex
	courses map[string]notehub.Course
}

func NewCourseIndex() *CourseIndex {
	return &CourseIndex{courses: make(map[string]notehub.Course)}
}

func (i *CourseIndex) Index(course *notehub.Course) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.courses[course.ID] = *course
	return nil
}

func (i *CourseIndex) Delete(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.courses, id)
	return nil
}

func (i *CourseIndex) Search(search notehub.CourseSearch) (notehub.CourseSearchResults, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ids := make([]string, 0, len(i.courses))
	for id, course := range i.courses {
		if matches(search.Q, course.Username, course.Name) {
			ids = append(ids, id)
		}
	}

	sortIDs(ids, search.SortBy)

	total := uint64(len(ids))
	return notehub.CourseSearchResults{
		IDs: paginate(ids, search.Limit, search.Offset),
		Pagination: notehub.Pagination{
			Total:  total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}

	q = strings.ToLower(q)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func sortIDs(ids []string, sortBy string) {
	sort.Strings(ids)
	if sortBy == "desc" {
		for l, r := 0, len(ids)-1; l < r; l, r = l+1, r-1 {
			ids[l], ids[r] = ids[r], ids[l]
		}
	}
}

func paginate(ids []string, limit, offset uint64) []string {
	total := uint64(len(ids))
	if offset >= total {
		return []string{}
	}

	end := offset + limit
	if limit == 0 || end > total {
		end = total
	}
	return ids[offset:end]
}
