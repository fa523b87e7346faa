package memory

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type AccountRepository struct {
	s *Store
}

func NewAccountRepository(s *Store) *AccountRepository {
	return &AccountRepository{s: s}
}

func (r *AccountRepository) GetUser(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, nil
	}
	r.attachProfile(&u)
	return &u, nil
}

func (r *AccountRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.data.users {
		if u.Email == email {
			r.attachProfile(&u)
			return &u, nil
		}
	}
	return nil, nil
}

func (r *AccountRepository) attachProfile(u *models.User) {
	u.Profile = nil
	for _, p := range r.s.data.profiles {
		if p.UserID == u.ID {
			p := p
			u.Profile = &p
			return
		}
	}
}

func (r *AccountRepository) CreateUser(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.users {
		if existing.Email == u.Email {
			return uniqueViolation("idx_users_email")
		}
	}

	u.ID = r.s.data.next("users")
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt

	stored := *u
	stored.Profile = nil
	r.s.data.users[u.ID] = stored

	if u.Profile != nil {
		u.Profile.ID = r.s.data.next("profiles")
		u.Profile.UserID = u.ID
		r.s.data.profiles[u.Profile.ID] = *u.Profile
	}
	return nil
}

func (r *AccountRepository) SetAvatar(_ context.Context, userID uint, url string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.data.profiles {
		if p.UserID == userID {
			p.AvatarURL = url
			p.UpdatedAt = r.s.now()
			r.s.data.profiles[id] = p
			return nil
		}
	}
	id := r.s.data.next("profiles")
	r.s.data.profiles[id] = models.Profile{ID: id, UserID: userID, AvatarURL: url}
	return nil
}

var _ domain.Repository = (*AccountRepository)(nil)
