package auth

import (
	"context"
	"strings"

	"github.com/nutriapp/nutriapp-backend/internal/users"
	"github.com/nutriapp/nutriapp-backend/pkg/config"
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/security"
)

// RegisterService handles account creation.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type creatorRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerService struct {
	users       creatorRepository
	passwordCfg config.PasswordConfig
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	UserRepo       creatorRepository
	PasswordConfig config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repository required")
	}
	return &registerService{
		users:       params.UserRepo,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	if violations := security.ValidatePassword(req.Password); len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, strings.Join(violations, " "))
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Email:        email,
		PasswordHash: passwordHash,
		Nickname:     strings.TrimSpace(req.Nickname),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Gender:       req.Gender,
	})
	if err != nil {
		if conflict := users.ConflictFromUnique(err); conflict != nil {
			return nil, conflict
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return &RegisterResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		FirstName: user.FirstName,
	}, nil
}
