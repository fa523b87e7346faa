package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type ConsultantGormRepository struct {
	db *gorm.DB
}

func NewConsultantGormRepository(db *gorm.DB) *ConsultantGormRepository {
	return &ConsultantGormRepository{db: db}
}

func (r *ConsultantGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return withinTx(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&ConsultantGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Consultant
// --------------------------------------------------

func (r *ConsultantGormRepository) GetConsultant(
	ctx context.Context,
	id uint,
) (*models.Consultant, error) {

	var c models.Consultant
	ok, err := first(r.db.WithContext(ctx).Preload("User").Where("id = ?", id), &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultantGormRepository) LockConsultant(
	ctx context.Context,
	id uint,
) (*models.Consultant, error) {

	var c models.Consultant
	ok, err := first(
		r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("User").
			Where("id = ?", id),
		&c,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultantGormRepository) GetConsultantByUser(
	ctx context.Context,
	userID uint,
) (*models.Consultant, error) {

	var c models.Consultant
	ok, err := first(r.db.WithContext(ctx).Where("user_id = ?", userID), &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultantGormRepository) ListConsultants(
	ctx context.Context,
) ([]models.Consultant, error) {

	var out []models.Consultant
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = consultants.user_id").
		Where("users.status = ?", models.UserStatusActive).
		Order("consultants.id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConsultantGormRepository) CreateConsultant(
	ctx context.Context,
	c *models.Consultant,
) error {
	return r.db.WithContext(ctx).Omit("User").Create(c).Error
}

func (r *ConsultantGormRepository) DeleteConsultant(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Consultant{}).Error
}

// --------------------------------------------------
// User / Profile
// --------------------------------------------------

func (r *ConsultantGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *ConsultantGormRepository) SetUserRole(
	ctx context.Context,
	userID uint,
	role string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}

func (r *ConsultantGormRepository) SetUserStatus(
	ctx context.Context,
	userID uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("status", status).Error
}

func (r *ConsultantGormRepository) DeleteProfile(
	ctx context.Context,
	userID uint,
) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error
}

func (r *ConsultantGormRepository) DeleteUser(
	ctx context.Context,
	userID uint,
) error {
	return r.db.WithContext(ctx).Where("id = ?", userID).Delete(&models.User{}).Error
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *ConsultantGormRepository) ListConsultantBookings(
	ctx context.Context,
	consultantID uint,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConsultantGormRepository) SetBookingsStatus(
	ctx context.Context,
	ids []uint,
	status string,
) (int64, error) {

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id IN ?", ids).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *ConsultantGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (r *ConsultantGormRepository) CreateSlot(
	ctx context.Context,
	s *models.Slot,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ConsultantGormRepository) HasSlotAssignment(
	ctx context.Context,
	consultantID uint,
	slotID uint,
	weekday int,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ConsultantSlot{}).
		Where("consultant_id = ? AND slot_id = ? AND weekday = ?", consultantID, slotID, weekday).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ConsultantGormRepository) CreateSlotAssignment(
	ctx context.Context,
	cs *models.ConsultantSlot,
) error {
	return r.db.WithContext(ctx).Omit("Slot").Create(cs).Error
}

func (r *ConsultantGormRepository) ListSlotAssignments(
	ctx context.Context,
	consultantID uint,
) ([]models.ConsultantSlot, error) {

	var out []models.ConsultantSlot
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("consultant_id = ?", consultantID).
		Order("weekday ASC, slot_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConsultantGormRepository) DeleteSlotAssignments(
	ctx context.Context,
	consultantID uint,
) error {
	return r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Delete(&models.ConsultantSlot{}).Error
}

// Compile-time check
var _ domain.Repository = (*ConsultantGormRepository)(nil)
