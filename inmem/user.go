package inmem

import (
	"sort"
	"strconv"
	"sync"

	"github.com/bobinette/notehub"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]notehub.User
	maxID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]notehub.User),
	}
}

func (r *UserRepository) Get(id string) (*notehub.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepository) GetByAuthID(authID string) (*notehub.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.AuthID == authID {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByUsername(username string) (*notehub.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(ids ...string) ([]*notehub.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*notehub.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			user := user
			users = append(users, &user)
		}
	}
	return users, nil
}

func (r *UserRepository) All() ([]*notehub.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*notehub.User, 0, len(r.users))
	for _, user := range r.users {
		user := user
		users = append(users, &user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) Upsert(user *notehub.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		r.maxID++
		user.ID = strconv.Itoa(r.maxID)
	}

	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}
