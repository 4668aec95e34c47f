package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/model"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/repository"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, params LoginParams) error
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) error {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	if _, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        params.Email,
		PasswordHash: passwordHash,
	}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) error {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same outcome as a password mismatch so callers cannot probe
			// which emails are registered.
			return ErrInvalidCredentials
		}

		return err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return err
	} else if !ok {
		return ErrInvalidCredentials
	}

	return nil
}
