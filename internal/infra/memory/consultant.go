package memory

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type ConsultantRepository struct {
	s    *Store
	inTx bool
}

func NewConsultantRepository(s *Store) *ConsultantRepository {
	return &ConsultantRepository{s: s}
}

func (r *ConsultantRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.s.run(ctx, r.inTx, func() error {
		return fn(&ConsultantRepository{s: r.s, inTx: true})
	})
}

// --------------------------------------------------
// Consultant
// --------------------------------------------------

func (r *ConsultantRepository) GetConsultant(_ context.Context, id uint) (*models.Consultant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.data.consultants[id]
	if !ok {
		return nil, nil
	}
	c.User = r.s.data.users[c.UserID]
	return &c, nil
}

// LockConsultant is GetConsultant: transactions are already serialized.
func (r *ConsultantRepository) LockConsultant(ctx context.Context, id uint) (*models.Consultant, error) {
	return r.GetConsultant(ctx, id)
}

func (r *ConsultantRepository) GetConsultantByUser(_ context.Context, userID uint) (*models.Consultant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.data.consultants {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ConsultantRepository) ListConsultants(_ context.Context) ([]models.Consultant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Consultant
	for _, c := range sortedValues(r.s.data.consultants) {
		u := r.s.data.users[c.UserID]
		if u.Status != models.UserStatusActive {
			continue
		}
		c.User = u
		out = append(out, c)
	}
	return out, nil
}

func (r *ConsultantRepository) CreateConsultant(_ context.Context, c *models.Consultant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.data.consultants {
		if other.UserID == c.UserID {
			return uniqueViolation("idx_consultants_user_id")
		}
	}
	c.ID = r.s.data.next("consultants")
	c.CreatedAt = r.s.now()
	r.s.data.consultants[c.ID] = *c
	return nil
}

func (r *ConsultantRepository) DeleteConsultant(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.consultants, id)
	return nil
}

// --------------------------------------------------
// User / Profile
// --------------------------------------------------

func (r *ConsultantRepository) GetUser(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.data.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *ConsultantRepository) SetUserRole(_ context.Context, userID uint, role string) error {
	return r.updateUser(userID, func(u *models.User) { u.Role = role })
}

func (r *ConsultantRepository) SetUserStatus(_ context.Context, userID uint, status string) error {
	return r.updateUser(userID, func(u *models.User) { u.Status = status })
}

func (r *ConsultantRepository) updateUser(id uint, mutate func(*models.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil
	}
	mutate(&u)
	u.UpdatedAt = r.s.now()
	r.s.data.users[id] = u
	return nil
}

func (r *ConsultantRepository) DeleteProfile(_ context.Context, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.data.profiles {
		if p.UserID == userID {
			delete(r.s.data.profiles, id)
		}
	}
	return nil
}

func (r *ConsultantRepository) DeleteUser(_ context.Context, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.users, userID)
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *ConsultantRepository) ListConsultantBookings(_ context.Context, consultantID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Booking
	for _, b := range sortedValues(r.s.data.bookings) {
		if b.ConsultantID == consultantID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *ConsultantRepository) SetBookingsStatus(_ context.Context, ids []uint, status string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, id := range ids {
		b, ok := r.s.data.bookings[id]
		if !ok {
			continue
		}
		b.Status = status
		b.UpdatedAt = r.s.now()
		r.s.data.bookings[id] = b
		n++
	}
	return n, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *ConsultantRepository) GetSlot(_ context.Context, id uint) (*models.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if sl, ok := r.s.data.slots[id]; ok {
		return &sl, nil
	}
	return nil, nil
}

func (r *ConsultantRepository) CreateSlot(_ context.Context, sl *models.Slot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl.ID = r.s.data.next("slots")
	sl.CreatedAt = r.s.now()
	r.s.data.slots[sl.ID] = *sl
	return nil
}

func (r *ConsultantRepository) HasSlotAssignment(_ context.Context, consultantID, slotID uint, weekday int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, cs := range r.s.data.consultantSlots {
		if cs.ConsultantID == consultantID && cs.SlotID == slotID && cs.Weekday == weekday {
			return true, nil
		}
	}
	return false, nil
}

func (r *ConsultantRepository) CreateSlotAssignment(_ context.Context, cs *models.ConsultantSlot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cs.ID = r.s.data.next("consultant_slots")
	cs.CreatedAt = r.s.now()
	r.s.data.consultantSlots[cs.ID] = *cs
	return nil
}

func (r *ConsultantRepository) ListSlotAssignments(_ context.Context, consultantID uint) ([]models.ConsultantSlot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.ConsultantSlot
	for _, cs := range sortedValues(r.s.data.consultantSlots) {
		if cs.ConsultantID == consultantID {
			cs.Slot = r.s.data.slots[cs.SlotID]
			out = append(out, cs)
		}
	}
	return out, nil
}

func (r *ConsultantRepository) DeleteSlotAssignments(_ context.Context, consultantID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, cs := range r.s.data.consultantSlots {
		if cs.ConsultantID == consultantID {
			delete(r.s.data.consultantSlots, id)
		}
	}
	return nil
}

var _ domain.Repository = (*ConsultantRepository)(nil)
