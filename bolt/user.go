package bolt

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notehub"
)

type UserRepository struct {
	Driver *Driver
}

func (r *UserRepository) Get(id string) (*notehub.User, error) {
	var user *notehub.User
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		user = &notehub.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByAuthID(authID string) (*notehub.User, error) {
	var user *notehub.User
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u notehub.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.AuthID == authID {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(username string) (*notehub.User, error) {
	var user *notehub.User
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u notehub.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Username == username {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) List(ids ...string) ([]*notehub.User, error) {
	users := make([]*notehub.User, 0, len(ids))
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}

			var user notehub.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) All() ([]*notehub.User, error) {
	users := make([]*notehub.User, 0)
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user notehub.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Upsert(user *notehub.User) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID == "" {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			user.ID = strconv.FormatUint(id, 10)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(user.ID), data)
	})
}

func (r *UserRepository) Delete(id string) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		return bucket.Delete([]byte(id))
	})
}
