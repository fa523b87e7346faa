package account

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// Repository covers users and their profiles. Getters return (nil, nil)
// when the row does not exist.
type Repository interface {
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// CreateUser inserts the user and, when set, its profile.
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	// SetAvatar stores the avatar url, creating the profile if needed.
	SetAvatar(
		ctx context.Context,
		userID uint,
		url string,
	) error
}
