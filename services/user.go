package services

import (
	"fmt"
	"strings"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/log"
)

// UserService exposes the user-facing operations: profiles, search
// and the reply activity feed.
type UserService struct {
	users  notehub.UserRepository
	notes  notehub.NoteRepository
	index  notehub.UserIndex
	logger log.Logger
}

func NewUserService(users notehub.UserRepository, notes notehub.NoteRepository, index notehub.UserIndex, logger log.Logger) *UserService {
	return &UserService{
		users:  users,
		notes:  notes,
		index:  index,
		logger: logger,
	}
}

// UserUpdate is the profile payload accepted by Upsert.
type UserUpdate struct {
	AuthID   string `json:"authID"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// UserNotes is a user's profile together with their notes, resolved
// for display.
type UserNotes struct {
	User  notehub.User      `json:"user"`
	Notes []notehub.NoteTree `json:"notes"`
}

// UserPage is a page of a user search.
type UserPage struct {
	Users      []notehub.User     `json:"users"`
	Pagination notehub.Pagination `json:"pagination"`
	HasNext    bool               `json:"hasNext"`
}

// Get retrieves a user by their external auth id. A nil user with no
// error means the user has not gone through onboarding yet.
func (s *UserService) Get(authID string) (*notehub.User, error) {
	user, err := s.users.GetByAuthID(authID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", authID, err)
		return nil, errors.New(fmt.Sprintf("failed to fetch user %s", authID), errors.WithCause(err))
	}
	return user, nil
}

// Upsert creates the user on first call and updates the profile on
// subsequent ones, keyed by auth id. The username is lowercased and
// the user is marked as onboarded.
func (s *UserService) Upsert(update UserUpdate) (notehub.User, error) {
	user, err := s.users.GetByAuthID(update.AuthID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", update.AuthID, err)
		return notehub.User{}, errors.New(fmt.Sprintf("failed to fetch user %s", update.AuthID), errors.WithCause(err))
	}
	if user == nil {
		user = &notehub.User{AuthID: update.AuthID}
	}

	// Usernames are unique across users, case-insensitively.
	username := strings.ToLower(update.Username)
	holder, err := s.users.GetByUsername(username)
	if err != nil {
		s.logger.Errorf("could not fetch user by username %s: %v", username, err)
		return notehub.User{}, errors.New(fmt.Sprintf("failed to fetch user by username %s", username), errors.WithCause(err))
	} else if holder != nil && holder.AuthID != update.AuthID {
		return notehub.User{}, errUsernameTaken(username)
	}

	user.Username = username
	user.Name = update.Name
	user.Bio = update.Bio
	user.Image = update.Image
	user.Onboarded = true

	if err := s.users.Upsert(user); err != nil {
		s.logger.Errorf("could not save user %s: %v", update.AuthID, err)
		return notehub.User{}, errors.New(fmt.Sprintf("failed to save user %s", update.AuthID), errors.WithCause(err))
	}
	if err := s.index.Index(user); err != nil {
		s.logger.Errorf("could not index user %s: %v", user.ID, err)
		return notehub.User{}, errors.New(fmt.Sprintf("failed to index user %s", user.ID), errors.WithCause(err))
	}
	return *user, nil
}

// Notes retrieves a user and all of their notes, with replies
// resolved depth levels down.
func (s *UserService) Notes(authID string, depth int) (UserNotes, error) {
	user, err := s.users.GetByAuthID(authID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", authID, err)
		return UserNotes{}, errors.New(fmt.Sprintf("failed to fetch user %s", authID), errors.WithCause(err))
	} else if user == nil {
		return UserNotes{}, errUserNotFound(authID)
	}

	notes, err := s.notes.List(user.Notes...)
	if err != nil {
		s.logger.Errorf("could not fetch notes of user %s: %v", user.ID, err)
		return UserNotes{}, errors.New(fmt.Sprintf("failed to fetch notes of user %s", user.ID), errors.WithCause(err))
	}

	trees, err := resolveNotes(s.users, s.notes, notes, depth)
	if err != nil {
		s.logger.Errorf("could not resolve notes of user %s: %v", user.ID, err)
		return UserNotes{}, errors.New(fmt.Sprintf("failed to resolve notes of user %s", user.ID), errors.WithCause(err))
	}
	return UserNotes{User: *user, Notes: trees}, nil
}

// Search looks for users matching q, excluding the caller from the
// results. An empty q matches everyone.
func (s *UserService) Search(callerAuthID, q string, page, pageSize int, sortBy string) (UserPage, error) {
	limit, offset := normalizePage(page, pageSize)

	var excludeID string
	if callerAuthID != "" {
		caller, err := s.users.GetByAuthID(callerAuthID)
		if err != nil {
			s.logger.Errorf("could not fetch user %s: %v", callerAuthID, err)
			return UserPage{}, errors.New(fmt.Sprintf("failed to fetch user %s", callerAuthID), errors.WithCause(err))
		} else if caller != nil {
			excludeID = caller.ID
		}
	}

	results, err := s.index.Search(notehub.UserSearch{
		Q:         q,
		ExcludeID: excludeID,
		Limit:     limit,
		Offset:    offset,
		SortBy:    sortBy,
	})
	if err != nil {
		s.logger.Errorf("could not search users for %q: %v", q, err)
		return UserPage{}, errors.New(fmt.Sprintf("failed to search users for %q", q), errors.WithCause(err))
	}

	users, err := s.users.List(results.IDs...)
	if err != nil {
		s.logger.Errorf("could not fetch users: %v", err)
		return UserPage{}, errors.New("failed to fetch users", errors.WithCause(err))
	}

	res := UserPage{
		Users:      make([]notehub.User, 0, len(users)),
		Pagination: results.Pagination,
	}
	for _, user := range users {
		res.Users = append(res.Users, *user)
	}
	res.HasNext = results.Pagination.HasNext(len(res.Users))
	return res, nil
}

// Activity lists the replies other users left on the user's notes,
// newest last, with their authors resolved.
func (s *UserService) Activity(userID string) ([]notehub.NoteTree, error) {
	authored, err := s.notes.ListByAuthor(userID)
	if err != nil {
		s.logger.Errorf("could not fetch notes of user %s: %v", userID, err)
		return nil, errors.New(fmt.Sprintf("failed to fetch notes of user %s", userID), errors.WithCause(err))
	}

	var childIDs []string
	for _, note := range authored {
		childIDs = append(childIDs, note.Children...)
	}

	replies, err := s.notes.List(childIDs...)
	if err != nil {
		s.logger.Errorf("could not fetch replies for user %s: %v", userID, err)
		return nil, errors.New(fmt.Sprintf("failed to fetch replies for user %s", userID), errors.WithCause(err))
	}

	// Replying to yourself does not count as activity.
	others := make([]*notehub.Note, 0, len(replies))
	for _, reply := range replies {
		if reply.AuthorID != userID {
			others = append(others, reply)
		}
	}

	trees, err := resolveNotes(s.users, s.notes, others, 0)
	if err != nil {
		s.logger.Errorf("could not resolve replies for user %s: %v", userID, err)
		return nil, errors.New(fmt.Sprintf("failed to resolve replies for user %s", userID), errors.WithCause(err))
	}
	return trees, nil
}
