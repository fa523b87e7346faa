package account

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, userID uint) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if u == nil {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return u, nil
}
