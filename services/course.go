package services

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/log"
)

// CourseService exposes the course operations: creation, details,
// posts, search, membership and deletion.
type CourseService struct {
	courses notehub.CourseRepository
	users   notehub.UserRepository
	notes   notehub.NoteRepository
	index   notehub.CourseIndex
	logger  log.Logger
}

func NewCourseService(courses notehub.CourseRepository, users notehub.UserRepository, notes notehub.NoteRepository, index notehub.CourseIndex, logger log.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		users:   users,
		notes:   notes,
		index:   index,
		logger:  logger,
	}
}

// CourseCreate is the payload accepted by Create.
type CourseCreate struct {
	ExternalID    string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Image         string `json:"image"`
	Bio           string `json:"bio"`
	CreatorAuthID string `json:"createdBy"`
}

// CourseDetails is a course with its creator and members resolved.
type CourseDetails struct {
	Course  notehub.Course `json:"course"`
	Creator *notehub.User  `json:"creator"`
	Members []notehub.User `json:"members"`
}

// CoursePosts is a course together with its notes, resolved for
// display.
type CoursePosts struct {
	Course notehub.Course     `json:"course"`
	Notes  []notehub.NoteTree `json:"notes"`
}

// CoursePage is a page of a course search, members resolved.
type CoursePage struct {
	Courses    []CourseDetails    `json:"courses"`
	Pagination notehub.Pagination `json:"pagination"`
	HasNext    bool               `json:"hasNext"`
}

// Create saves a new course and links it to the creator's course set.
func (s *CourseService) Create(p CourseCreate) (notehub.Course, error) {
	creator, err := s.users.GetByAuthID(p.CreatorAuthID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", p.CreatorAuthID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to fetch user %s", p.CreatorAuthID), errors.WithCause(err))
	} else if creator == nil {
		return notehub.Course{}, errUserNotFound(p.CreatorAuthID)
	}

	// Course usernames are unique.
	holder, err := s.courses.GetByUsername(p.Username)
	if err != nil {
		s.logger.Errorf("could not fetch course by username %s: %v", p.Username, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to fetch course by username %s", p.Username), errors.WithCause(err))
	} else if holder != nil {
		return notehub.Course{}, errUsernameTaken(p.Username)
	}

	course := notehub.Course{
		ExternalID: p.ExternalID,
		Name:       p.Name,
		Username:   p.Username,
		Image:      p.Image,
		Bio:        p.Bio,
		CreatorID:  creator.ID,
		Members:    []string{},
		Notes:      []string{},
	}
	if err := s.courses.Upsert(&course); err != nil {
		s.logger.Errorf("could not save course: %v", err)
		return notehub.Course{}, errors.New("failed to save course", errors.WithCause(err))
	}

	creator.Courses = append(creator.Courses, course.ID)
	if err := s.users.Upsert(creator); err != nil {
		s.logger.Errorf("could not link course %s to user %s: %v", course.ID, creator.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to link course %s to its creator", course.ID), errors.WithCause(err))
	}

	if err := s.index.Index(&course); err != nil {
		s.logger.Errorf("could not index course %s: %v", course.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to index course %s", course.ID), errors.WithCause(err))
	}
	return course, nil
}

// Details retrieves a course by its external id, with the creator and
// members resolved.
func (s *CourseService) Details(externalID string) (CourseDetails, error) {
	course, err := s.getByExternalID(externalID)
	if err != nil {
		return CourseDetails{}, err
	}
	return s.details(course)
}

func (s *CourseService) details(course *notehub.Course) (CourseDetails, error) {
	creator, err := s.users.Get(course.CreatorID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", course.CreatorID, err)
		return CourseDetails{}, errors.New(fmt.Sprintf("failed to fetch user %s", course.CreatorID), errors.WithCause(err))
	}

	members, err := s.users.List(course.Members...)
	if err != nil {
		s.logger.Errorf("could not fetch members of course %s: %v", course.ID, err)
		return CourseDetails{}, errors.New(fmt.Sprintf("failed to fetch members of course %s", course.ID), errors.WithCause(err))
	}

	details := CourseDetails{
		Course:  *course,
		Creator: creator,
		Members: make([]notehub.User, 0, len(members)),
	}
	for _, member := range members {
		details.Members = append(details.Members, *member)
	}
	return details, nil
}

// Posts retrieves a course and its notes, with replies resolved depth
// levels down.
func (s *CourseService) Posts(externalID string, depth int) (CoursePosts, error) {
	course, err := s.getByExternalID(externalID)
	if err != nil {
		return CoursePosts{}, err
	}

	notes, err := s.notes.List(course.Notes...)
	if err != nil {
		s.logger.Errorf("could not fetch notes of course %s: %v", course.ID, err)
		return CoursePosts{}, errors.New(fmt.Sprintf("failed to fetch notes of course %s", course.ID), errors.WithCause(err))
	}

	trees, err := resolveNotes(s.users, s.notes, notes, depth)
	if err != nil {
		s.logger.Errorf("could not resolve notes of course %s: %v", course.ID, err)
		return CoursePosts{}, errors.New(fmt.Sprintf("failed to resolve notes of course %s", course.ID), errors.WithCause(err))
	}
	return CoursePosts{Course: *course, Notes: trees}, nil
}

// Search looks for courses matching q. An empty q matches everything.
func (s *CourseService) Search(q string, page, pageSize int, sortBy string) (CoursePage, error) {
	limit, offset := normalizePage(page, pageSize)

	results, err := s.index.Search(notehub.CourseSearch{
		Q:      q,
		Limit:  limit,
		Offset: offset,
		SortBy: sortBy,
	})
	if err != nil {
		s.logger.Errorf("could not search courses for %q: %v", q, err)
		return CoursePage{}, errors.New(fmt.Sprintf("failed to search courses for %q", q), errors.WithCause(err))
	}

	courses, err := s.courses.List(results.IDs...)
	if err != nil {
		s.logger.Errorf("could not fetch courses: %v", err)
		return CoursePage{}, errors.New("failed to fetch courses", errors.WithCause(err))
	}

	res := CoursePage{
		Courses:    make([]CourseDetails, 0, len(courses)),
		Pagination: results.Pagination,
	}
	for _, course := range courses {
		details, err := s.details(course)
		if err != nil {
			return CoursePage{}, err
		}
		res.Courses = append(res.Courses, details)
	}
	res.HasNext = results.Pagination.HasNext(len(res.Courses))
	return res, nil
}

// AddMember adds a user to a course and the course to the user's
// course set. Adding an existing member is a conflict and leaves both
// sides untouched.
func (s *CourseService) AddMember(courseExternalID, memberAuthID string) (notehub.Course, error) {
	course, err := s.getByExternalID(courseExternalID)
	if err != nil {
		return notehub.Course{}, err
	}

	member, err := s.getMember(memberAuthID)
	if err != nil {
		return notehub.Course{}, err
	}

	if contains(course.Members, member.ID) {
		return notehub.Course{}, errAlreadyMember(member.ID, course.ID)
	}

	course.Members = append(course.Members, member.ID)
	if err := s.courses.Upsert(course); err != nil {
		s.logger.Errorf("could not save course %s: %v", course.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to save course %s", course.ID), errors.WithCause(err))
	}

	member.Courses = append(member.Courses, course.ID)
	if err := s.users.Upsert(member); err != nil {
		s.logger.Errorf("could not link course %s to user %s: %v", course.ID, member.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to link course %s to user %s", course.ID, member.ID), errors.WithCause(err))
	}
	return *course, nil
}

// RemoveMember removes a user from a course and the course from the
// user's course set. Removing a user that is not a member is a no-op.
func (s *CourseService) RemoveMember(memberAuthID, courseExternalID string) error {
	course, err := s.getByExternalID(courseExternalID)
	if err != nil {
		return err
	}

	member, err := s.getMember(memberAuthID)
	if err != nil {
		return err
	}

	course.Members = remove(course.Members, member.ID)
	if err := s.courses.Upsert(course); err != nil {
		s.logger.Errorf("could not save course %s: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to save course %s", course.ID), errors.WithCause(err))
	}

	member.Courses = remove(member.Courses, course.ID)
	if err := s.users.Upsert(member); err != nil {
		s.logger.Errorf("could not save user %s: %v", member.ID, err)
		return errors.New(fmt.Sprintf("failed to save user %s", member.ID), errors.WithCause(err))
	}
	return nil
}

// Update changes a course's name, username and image, and reindexes
// it.
func (s *CourseService) Update(externalID, name, username, image string) (notehub.Course, error) {
	course, err := s.getByExternalID(externalID)
	if err != nil {
		return notehub.Course{}, err
	}

	holder, err := s.courses.GetByUsername(username)
	if err != nil {
		s.logger.Errorf("could not fetch course by username %s: %v", username, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to fetch course by username %s", username), errors.WithCause(err))
	} else if holder != nil && holder.ID != course.ID {
		return notehub.Course{}, errUsernameTaken(username)
	}

	course.Name = name
	course.Username = username
	course.Image = image
	if err := s.courses.Upsert(course); err != nil {
		s.logger.Errorf("could not save course %s: %v", course.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to save course %s", course.ID), errors.WithCause(err))
	}

	if err := s.index.Index(course); err != nil {
		s.logger.Errorf("could not index course %s: %v", course.ID, err)
		return notehub.Course{}, errors.New(fmt.Sprintf("failed to index course %s", course.ID), errors.WithCause(err))
	}
	return *course, nil
}

// Delete removes a course, all of its notes, and its id from the
// course set of every member and of the creator. The user updates run
// concurrently.
func (s *CourseService) Delete(externalID string) error {
	course, err := s.getByExternalID(externalID)
	if err != nil {
		return err
	}

	if err := s.courses.Delete(course.ID); err != nil {
		s.logger.Errorf("could not delete course %s: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to delete course %s", course.ID), errors.WithCause(err))
	}

	if err := s.notes.DeleteByCourse(course.ID); err != nil {
		s.logger.Errorf("could not delete notes of course %s: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to delete notes of course %s", course.ID), errors.WithCause(err))
	}

	affectedIDs := course.Members
	if !contains(affectedIDs, course.CreatorID) {
		affectedIDs = append(affectedIDs, course.CreatorID)
	}
	affected, err := s.users.List(affectedIDs...)
	if err != nil {
		s.logger.Errorf("could not fetch members of course %s: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to fetch members of course %s", course.ID), errors.WithCause(err))
	}

	var g errgroup.Group
	for _, user := range affected {
		user := user
		g.Go(func() error {
			user.Courses = remove(user.Courses, course.ID)
			return s.users.Upsert(user)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorf("could not unlink course %s from its members: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to unlink course %s from its members", course.ID), errors.WithCause(err))
	}

	if err := s.index.Delete(course.ID); err != nil {
		s.logger.Errorf("could not remove course %s from the index: %v", course.ID, err)
		return errors.New(fmt.Sprintf("failed to remove course %s from the index", course.ID), errors.WithCause(err))
	}
	return nil
}

func (s *CourseService) getByExternalID(externalID string) (*notehub.Course, error) {
	course, err := s.courses.GetByExternalID(externalID)
	if err != nil {
		s.logger.Errorf("could not fetch course %s: %v", externalID, err)
		return nil, errors.New(fmt.Sprintf("failed to fetch course %s", externalID), errors.WithCause(err))
	} else if course == nil {
		return nil, errCourseNotFound(externalID)
	}
	return course, nil
}

func (s *CourseService) getMember(authID string) (*notehub.User, error) {
	member, err := s.users.GetByAuthID(authID)
	if err != nil {
		s.logger.Errorf("could not fetch user %s: %v", authID, err)
		return nil, errors.New(fmt.Sprintf("failed to fetch user %s", authID), errors.WithCause(err))
	} else if member == nil {
		return nil, errUserNotFound(authID)
	}
	return member, nil
}
