package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/config"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/model"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/repository"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/security"
)

// PasswordResetUsecase defines the business logic for password reset token operations.
type PasswordResetUsecase interface {
	// RequestPasswordReset initiates the password reset process for a given email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword redeems the token with the given value and sets a new password.
	ResetPassword(ctx context.Context, tokenValue, newPassword string) error

	// ValidatePasswordResetToken checks that a token with the given value
	// exists and has not expired, without consuming it.
	ValidatePasswordResetToken(ctx context.Context, tokenValue string) error
}

// Mailer is the outbound email capability the reset flow depends on.
// *mailer.Mailer satisfies it.
type Mailer interface {
	SendHTML(to []string, subject, htmlBody string) error
}

var (
	ErrTokenNotFound = errors.New("password reset token not found")
	ErrTokenExpired  = errors.New("password reset token has expired")
	ErrUserNotFound  = errors.New("user not found")
)

type passwordResetUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetTokenRepository
	mailer    Mailer
	cfg       *config.Config
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	mailer Mailer,
	cfg *config.Config,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// To prevent email enumeration, do not reveal that the email does not exist.
			return nil
		}
		return err
	}

	value, err := security.GenerateResetTokenValue()
	if err != nil {
		return err
	}

	resetToken := &model.PasswordResetToken{
		UserID:    user.ID,
		Value:     value,
		ExpiresAt: time.Now().Add(u.cfg.ResetTokenTTL),
	}

	if _, err := u.tokenRepo.CreateToken(ctx, resetToken); err != nil {
		return err
	}

	// The token is persisted at this point. A delivery failure below is
	// reported to the caller but does not roll the token back.
	resetLink := fmt.Sprintf("%s/reset-password/%s", u.cfg.ClientURL, value)
	htmlBody := fmt.Sprintf(`
		<p>Hi,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, please click the link below to create a new password:</p>

		<p><a href="%s">%s</a></p>

		<p>This link will expire in %s for your security.</p>
		<p>If you did not request a password reset, you can safely ignore this email.</p>
	`, resetLink, resetLink, u.cfg.ResetTokenTTL)

	if err := u.mailer.SendHTML([]string{user.Email}, "Password Reset Request", htmlBody); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	// Claiming deletes the token, so a given value can only ever be redeemed
	// once even under concurrent requests.
	resetToken, err := u.tokenRepo.ClaimToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTokenNotFound
		}
		return err
	}

	if time.Now().After(resetToken.ExpiresAt) {
		return ErrTokenExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := u.userRepo.UpdateUser(ctx, resetToken.UserID.Hex(), repository.UpdateUserParams{
		PasswordHash: &passwordHash,
	}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func (u *passwordResetUsecase) ValidatePasswordResetToken(ctx context.Context, tokenValue string) error {
	resetToken, err := u.tokenRepo.GetTokenByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTokenNotFound
		}
		return err
	}

	if time.Now().After(resetToken.ExpiresAt) {
		return ErrTokenExpired
	}

	return nil
}
