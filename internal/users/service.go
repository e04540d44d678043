package users

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dkenzhe/lavka/internal/common"
	"github.com/dkenzhe/lavka/internal/logging"
)

// SessionSync refreshes the denormalized session snapshot after a profile
// mutation. Satisfied by session.Manager.
type SessionSync interface {
	Resync(ctx context.Context, userID int64, email, fullName string) error
}

// Candidate carries the signup form fields for Register.
type Candidate struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// Service implements account operations over the users collection. Every
// mutation is load -> modify -> save; the repository rewrites the whole blob
// so no partial state is ever observable.
type Service struct {
	repo     Repository
	sessions SessionSync
	log      logging.Logger
}

func NewService(repo Repository, sessions SessionSync, log logging.Logger) *Service {
	return &Service{repo: repo, sessions: sessions, log: log}
}

// Register creates an account. Emails are unique, compared exactly as
// stored. The new id is ordered after every previously issued one.
func (s *Service) Register(ctx context.Context, candidate Candidate) (*User, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, u := range records {
		if u.Email == candidate.Email {
			return nil, common.ErrEmailTaken
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := User{
		ID:        common.TimestampID(maxID),
		FullName:  candidate.FullName,
		Email:     candidate.Email,
		Password:  candidate.Password,
		Phone:     candidate.Phone,
		CreatedAt: time.Now(),
		Visits:    0,
		Feedback:  []Feedback{},
	}

	records = append(records, user)
	if err := s.repo.Save(ctx, records); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account registered", "user_id", user.ID)
	return &user, nil
}

// Authenticate checks credentials by exact match on both fields. On success
// the visit counter is incremented and persisted before the user is returned.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Email == email && records[i].Password == password {
			records[i].Visits++
			if err := s.repo.Save(ctx, records); err != nil {
				return nil, err
			}
			user := records[i]
			s.log.Info(ctx, "login", "user_id", user.ID, "visits", user.Visits)
			return &user, nil
		}
	}

	return nil, common.ErrInvalidCredentials
}

// GetByID returns the full account record, re-read from the store.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			user := records[i]
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

// UpdateProfile overwrites name and phone in place, then refreshes the live
// session snapshot so it does not go stale when the name changed.
func (s *Service) UpdateProfile(ctx context.Context, id int64, fullName, phone string) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records[i].FullName = fullName
			records[i].Phone = phone
			if err := s.repo.Save(ctx, records); err != nil {
				return err
			}
			return s.sessions.Resync(ctx, id, records[i].Email, fullName)
		}
	}

	return common.ErrNotFound
}

// AppendFeedback is the single entry point the contact form collaborator
// appends through.
func (s *Service) AppendFeedback(ctx context.Context, id int64, fb Feedback) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records[i].Feedback = append(records[i].Feedback, fb)
			return s.repo.Save(ctx, records)
		}
	}

	return common.ErrNotFound
}

// ClearFeedback replaces the user's feedback history with empty.
func (s *Service) ClearFeedback(ctx context.Context, id int64) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records[i].Feedback = []Feedback{}
			return s.repo.Save(ctx, records)
		}
	}

	return common.ErrNotFound
}

// FilterFeedback returns the user's feedback, newest first, optionally
// narrowed by an exact subject and a case-insensitive substring search over
// message, subject and submitter name.
func (s *Service) FilterFeedback(ctx context.Context, id int64, subject, search string) ([]Feedback, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]Feedback, 0, len(user.Feedback))
	term := strings.ToLower(search)
	for _, fb := range user.Feedback {
		if subject != "" && fb.Subject != subject {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(fb.Message), term) &&
			!strings.Contains(strings.ToLower(fb.Subject), term) &&
			!strings.Contains(strings.ToLower(fb.Name), term) {
			continue
		}
		result = append(result, fb)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}
