// Package memory is an in-process implementation of the repository
// interfaces. Transactions run one at a time and roll back by restoring a
// snapshot. The postgres unique index on active bookings is emulated.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type tables struct {
	users           map[uint]models.User
	profiles        map[uint]models.Profile
	consultants     map[uint]models.Consultant
	slots           map[uint]models.Slot
	consultantSlots map[uint]models.ConsultantSlot
	bookings        map[uint]models.Booking
	programs        map[uint]models.Program
	surveys         map[uint]models.Survey
	responses       map[uint]models.SurveyResponse
	seq             map[string]uint
}

func newTables() *tables {
	return &tables{
		users:           map[uint]models.User{},
		profiles:        map[uint]models.Profile{},
		consultants:     map[uint]models.Consultant{},
		slots:           map[uint]models.Slot{},
		consultantSlots: map[uint]models.ConsultantSlot{},
		bookings:        map[uint]models.Booking{},
		programs:        map[uint]models.Program{},
		surveys:         map[uint]models.Survey{},
		responses:       map[uint]models.SurveyResponse{},
		seq:             map[string]uint{},
	}
}

func (t *tables) clone() *tables {
	c := &tables{
		users:           maps.Clone(t.users),
		profiles:        maps.Clone(t.profiles),
		consultants:     maps.Clone(t.consultants),
		slots:           maps.Clone(t.slots),
		consultantSlots: maps.Clone(t.consultantSlots),
		bookings:        maps.Clone(t.bookings),
		programs:        maps.Clone(t.programs),
		surveys:         make(map[uint]models.Survey, len(t.surveys)),
		responses:       maps.Clone(t.responses),
		seq:             maps.Clone(t.seq),
	}
	// snapshots must not share question slices
	for id, s := range t.surveys {
		s.Questions = append(s.Questions[:0:0], s.Questions...)
		c.surveys[id] = s
	}
	return c
}

func (t *tables) next(table string) uint {
	t.seq[table]++
	return t.seq[table]
}

type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *tables
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{data: newTables(), now: time.Now}
}

// run executes fn as one transaction. Nested calls reuse the outer
// transaction but still roll back their own changes on error.
func (s *Store) run(ctx context.Context, nested bool, fn func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return httperr.ErrOperationFailed(err)
	}

	if !nested {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
			err = httperr.AsBusiness(err)
		}
	}()

	return fn()
}

func (s *Store) restore(snapshot *tables) {
	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
		Message:        "duplicate key value violates unique constraint",
	}
}

// --------------------------------------------------
// Seeding and inspection
// --------------------------------------------------

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.data.next("users")
	if u.Role == "" {
		u.Role = models.RoleMember
	}
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}
	u.CreatedAt = s.now()
	s.data.users[u.ID] = u
	return u
}

func (s *Store) AddProfile(p models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.data.next("profiles")
	s.data.profiles[p.ID] = p
	return p
}

func (s *Store) AddConsultant(c models.Consultant) models.Consultant {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.data.next("consultants")
	s.data.consultants[c.ID] = c
	return c
}

func (s *Store) AddSlot(sl models.Slot) models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl.ID = s.data.next("slots")
	s.data.slots[sl.ID] = sl
	return sl
}

func (s *Store) AddConsultantSlot(cs models.ConsultantSlot) models.ConsultantSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs.ID = s.data.next("consultant_slots")
	s.data.consultantSlots[cs.ID] = cs
	return cs
}

func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.data.next("bookings")
	s.data.bookings[b.ID] = b
	return b
}

func (s *Store) AddProgram(p models.Program) models.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.data.next("programs")
	s.data.programs[p.ID] = p
	return p
}

func (s *Store) AddSurvey(sv models.Survey) models.Survey {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv.ID = s.data.next("surveys")
	s.data.surveys[sv.ID] = sv
	return sv
}

func (s *Store) User(id uint) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.data.users[id]
	return u, ok
}

func (s *Store) Booking(id uint) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data.bookings[id]
	return b, ok
}

func (s *Store) Survey(id uint) (models.Survey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sv, ok := s.data.surveys[id]
	return sv, ok
}

func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.data.bookings)
}

func (s *Store) Responses() []models.SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.data.responses)
}

// Counts reports row counts per table, for asserting cascades.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":            len(s.data.users),
		"profiles":         len(s.data.profiles),
		"consultants":      len(s.data.consultants),
		"slots":            len(s.data.slots),
		"consultant_slots": len(s.data.consultantSlots),
		"bookings":         len(s.data.bookings),
	}
}
