package surreal

import (
	"github.com/surrealdb/surrealdb.go"

	"github.com/bobinette/notehub"
)

type UserRepository struct {
	Driver *Driver
}

func (r *UserRepository) Get(id string) (*notehub.User, error) {
	user, err := surrealdb.SmartUnmarshal[notehub.User](r.Driver.db.Select(id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByAuthID(authID string) (*notehub.User, error) {
	users, err := surrealdb.SmartUnmarshal[[]notehub.User](r.Driver.db.Query(
		"SELECT * FROM user WHERE authID = $authID LIMIT 1",
		map[string]interface{}{"authID": authID},
	))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) GetByUsername(username string) (*notehub.User, error) {
	users, err := surrealdb.SmartUnmarshal[[]notehub.User](r.Driver.db.Query(
		"SELECT * FROM user WHERE username = $username LIMIT 1",
		map[string]interface{}{"username": username},
	))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) List(ids ...string) ([]*notehub.User, error) {
	users := make([]*notehub.User, 0, len(ids))
	for _, id := range ids {
		user, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if user != nil {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *UserRepository) All() ([]*notehub.User, error) {
	users, err := surrealdb.SmartUnmarshal[[]notehub.User](r.Driver.db.Query(
		"SELECT * FROM user ORDER BY id",
		nil,
	))
	if err != nil {
		if isNoRow(err) {
			return []*notehub.User{}, nil
		}
		return nil, err
	}

	all := make([]*notehub.User, len(users))
	for i := range users {
		all[i] = &users[i]
	}
	return all, nil
}

func (r *UserRepository) Upsert(user *notehub.User) error {
	if user.ID == "" {
		user.ID = newID("user")
		_, err := r.Driver.db.Create(user.ID, user)
		return err
	}

	_, err := r.Driver.db.Update(user.ID, user)
	return err
}

func (r *UserRepository) Delete(id string) error {
	_, err := r.Driver.db.Delete(id)
	return err
}
