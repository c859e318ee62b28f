package notehub

type User struct {
	ID     string `json:"id"`
	AuthID string `json:"authID"`

	Username  string `json:"username"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Bio       string `json:"bio"`
	Onboarded bool   `json:"onboarded"`

	// Authored top-level notes and joined courses, by id. Both sides of
	// those relations are maintained by the services, the stores know
	// nothing about them.
	Notes   []string `json:"notes"`
	Courses []string `json:"courses"`
}

type UserRepository interface {
	// Get returns nil when no user has the given id.
	Get(id string) (*User, error)
	// GetByAuthID returns nil when no user has the given external auth id.
	GetByAuthID(authID string) (*User, error)
	// GetByUsername returns nil when no user has the given username.
	// Usernames are stored lower-cased, the lookup is exact.
	GetByUsername(username string) (*User, error)
	// List returns the users matching the given ids, skipping missing ones.
	List(ids ...string) ([]*User, error)
	All() ([]*User, error)
	// Upsert assigns an id when the user does not have one yet.
	Upsert(*User) error
	Delete(id string) error
}

type UserSearch struct {
	Q string `json:"q"`

	// ExcludeID removes a user (typically the caller) from the results.
	ExcludeID string `json:"excludeID"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
	SortBy string `json:"sortBy"`
}

type UserSearchResults struct {
	IDs        []string
	Pagination Pagination
}

type UserIndex interface {
	Index(*User) error
	Search(UserSearch) (UserSearchResults, error)
	Delete(id string) error
}
