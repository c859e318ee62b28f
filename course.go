package notehub

type Course struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalID"`

	Username string `json:"username"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`

	CreatorID string   `json:"createdBy"`
	Members   []string `json:"members"`
	Notes     []string `json:"notes"`
}

type CourseRepository interface {
	// Get returns nil when no course has the given id.
	Get(id string) (*Course, error)
	// GetByExternalID returns nil when no course has the given external id.
	GetByExternalID(externalID string) (*Course, error)
	// GetByUsername returns nil when no course has the given username.
	GetByUsername(username string) (*Course, error)
	// List returns the courses matching the given ids, skipping missing ones.
	List(ids ...string) ([]*Course, error)
	All() ([]*Course, error)
	// Upsert assigns an id when the course does not have one yet.
	Upsert(*Course) error
	Delete(id string) error
}

type CourseSearch struct {
	Q string `json:"q"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
	SortBy string `json:"sortBy"`
}

type CourseSearchResults struct {
	IDs        []string
	Pagination Pagination
}

type CourseIndex interface {
	Index(*Course) error
	Search(CourseSearch) (CourseSearchResults, error)
	Delete(id string) error
}
