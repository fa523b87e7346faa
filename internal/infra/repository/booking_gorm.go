package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return withinTx(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Consultant / Slot / Member
// --------------------------------------------------

func (r *BookingGormRepository) GetConsultant(
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

func (r *BookingGormRepository) GetConsultantByUser(
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

func (r *BookingGormRepository) LockConsultant(
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

func (r *BookingGormRepository) GetSlot(
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

func (r *BookingGormRepository) LockMember(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	ok, err := first(
		r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id),
		&u,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Booking (reads)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &b)
	if err != nil || !ok {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListMemberBookings(
	ctx context.Context,
	memberID uint,
	statuses []string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Where("member_id = ?", memberID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var out []models.Booking
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListSlotBookings(
	ctx context.Context,
	consultantID uint,
	slotID uint,
	date string,
	statuses []string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("consultant_id = ? AND slot_id = ? AND date = ?", consultantID, slotID, date)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var out []models.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.MemberID != 0 {
		q = q.Where("member_id = ?", filter.MemberID)
	}
	if filter.ConsultantID != 0 {
		q = q.Where("consultant_id = ?", filter.ConsultantID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []models.Booking
	if err := q.Order("date ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Booking (writes)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBookingColumns(
	ctx context.Context,
	id uint,
	columns map[string]any,
) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
