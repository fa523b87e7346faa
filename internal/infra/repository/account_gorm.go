package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	ok, err := first(r.db.WithContext(ctx).Preload("Profile").Where("id = ?", id), &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	ok, err := first(r.db.WithContext(ctx).Preload("Profile").Where("email = ?", email), &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AccountGormRepository) SetAvatar(
	ctx context.Context,
	userID uint,
	url string,
) error {

	p := models.Profile{UserID: userID, AvatarURL: url}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"avatar_url", "updated_at"}),
		}).
		Create(&p).Error
}

var _ domain.Repository = (*AccountGormRepository)(nil)
