package survey

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type CreateProgramInput struct {
	Title       string
	Description string
}

type CreateProgram struct {
	repo domain.Repository
}

func NewCreateProgram(repo domain.Repository) *CreateProgram {
	return &CreateProgram{repo: repo}
}

func (uc *CreateProgram) Execute(
	ctx context.Context,
	in CreateProgramInput,
) (*models.Program, error) {

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrValidation("invalid_title")
	}

	var created models.Program

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		exists, err := tx.ProgramTitleExists(ctx, title)
		if err != nil {
			return err
		}
		if exists {
			return httperr.ErrConflict("duplicate_title")
		}

		p := models.Program{Title: title, Description: in.Description}
		if err := tx.CreateProgram(ctx, &p); err != nil {
			if httperr.IsUniqueViolation(err, "") {
				return httperr.ErrConflict("duplicate_title")
			}
			return err
		}

		created = p
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &created, nil
}
