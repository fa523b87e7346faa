package account

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/imaging"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	"github.com/BruksfildServices01/counsel-scheduler/internal/storage"
)

// UploadAvatar transcodes the picture to webp, stores it and points the
// user's profile at it. A nil uploader means uploads are not configured.
type UploadAvatar struct {
	repo     domain.Repository
	uploader storage.Uploader
}

func NewUploadAvatar(
	repo domain.Repository,
	uploader storage.Uploader,
) *UploadAvatar {
	return &UploadAvatar{
		repo:     repo,
		uploader: uploader,
	}
}

func (uc *UploadAvatar) Execute(
	ctx context.Context,
	userID uint,
	file io.Reader,
) (*models.User, error) {

	if uc.uploader == nil {
		return nil, httperr.ErrValidation("storage_disabled")
	}

	body, err := imaging.Avatar(file)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return nil, httperr.ErrValidation("image_too_large")
	case errors.Is(err, imaging.ErrUnsupported):
		return nil, httperr.ErrValidation("invalid_image")
	case err != nil:
		return nil, httperr.ErrOperationFailed(err)
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())

	url, err := uc.uploader.Put(ctx, key, "image/webp", body)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	if err := uc.repo.SetAvatar(ctx, userID, url); err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if u == nil {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return u, nil
}
