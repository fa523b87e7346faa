package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// TokenIssuer signs the bearer token handed out on register and login.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type Register struct {
	repo   domain.Repository
	tokens TokenIssuer

	// adminEmail is promoted to admin on registration. Empty disables it.
	adminEmail string
	checkEmail func(string) bool
}

func NewRegister(
	repo domain.Repository,
	tokens TokenIssuer,
	adminEmail string,
	checkEmail func(string) bool,
) *Register {
	return &Register{
		repo:       repo,
		tokens:     tokens,
		adminEmail: domain.NormalizeEmail(adminEmail),
		checkEmail: checkEmail,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*AuthResult, error) {

	email := domain.NormalizeEmail(in.Email)
	if uc.checkEmail != nil && !uc.checkEmail(email) {
		return nil, httperr.ErrValidation("invalid_email_domain")
	}

	existing, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if existing != nil {
		return nil, httperr.ErrConflict("duplicate_email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	role := models.RoleMember
	if uc.adminEmail != "" && email == uc.adminEmail {
		role = models.RoleAdmin
	}

	u := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Status:       models.UserStatusActive,
		Profile: &models.Profile{
			FullName: strings.TrimSpace(in.FullName),
			Phone:    strings.TrimSpace(in.Phone),
		},
	}

	if err := uc.repo.CreateUser(ctx, &u); err != nil {
		if httperr.IsUniqueViolation(err, "") {
			return nil, httperr.ErrConflict("duplicate_email")
		}
		return nil, httperr.ErrOperationFailed(err)
	}

	token, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	return &AuthResult{User: &u, Token: token}, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens TokenIssuer
}

func NewLogin(repo domain.Repository, tokens TokenIssuer) *Login {
	return &Login{
		repo:   repo,
		tokens: tokens,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*AuthResult, error) {

	u, err := uc.repo.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if u == nil {
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	if u.Status != models.UserStatusActive {
		return nil, httperr.ErrUnauthorized("user_inactive")
	}

	token, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	return &AuthResult{User: u, Token: token}, nil
}
