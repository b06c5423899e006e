package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moviezone/internal/config"
	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"
	"moviezone/internal/mail"
	"moviezone/internal/middleware/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidResetLink  = errors.New("invalid reset link")
	ErrInvalidResetToken = errors.New("invalid or expired reset link")
)

// ResetRequestMessage is returned for every reset request, whether or
// not the email exists, to prevent account enumeration.
const ResetRequestMessage = "If an account exists with this email, you will receive password reset instructions."

const resetMailSubject = "Password Reset Request - MovieZone"

const resetMailTemplate = `Hello %s,

You requested to reset your password for MovieZone.

Click the link below to reset your password:
%s

This link will expire in 1 hour.

If you didn't request this, please ignore this email.

Thanks,
MovieZone Team
`

type PasswordResetService interface {
	// RequestReset never reports whether the email exists.
	RequestReset(email string) error
	ConfirmReset(uid, token, newPassword, confirmPassword string) error
}

type passwordResetService struct {
	userRepo         repository.UserRepository
	resetRepo        repository.PasswordResetRepository
	refreshTokenRepo repository.RefreshTokenRepository
	mailer           mail.Mailer
	resetTTL         time.Duration
	frontendBaseURL  string
	logger           *slog.Logger
}

func NewPasswordResetService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	mailer mail.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) PasswordResetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &passwordResetService{
		userRepo:         userRepo,
		resetRepo:        resetRepo,
		refreshTokenRepo: refreshTokenRepo,
		mailer:           mailer,
		resetTTL:         cfg.PasswordResetTTL,
		frontendBaseURL:  cfg.FrontendBaseURL,
		logger:           logger,
	}
}

// RequestReset issues a single-use token and mails the reset link when
// the email belongs to a user. Unknown emails return nil all the same.
func (s *passwordResetService) RequestReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Don't reveal that the email doesn't exist
		s.logger.Debug("password reset requested for unknown email")
		return nil
	}

	// sweep stale rows before issuing a new token
	if err := s.resetRepo.DeleteExpired(); err != nil {
		s.logger.Error("failed to delete expired reset tokens", "error", err)
	}

	token := &models.PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resetRepo.Create(token); err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	uid := base64.RawURLEncoding.EncodeToString([]byte(user.ID))
	resetLink := fmt.Sprintf("%s/reset-password/%s/%s", s.frontendBaseURL, uid, token.Token)

	body := fmt.Sprintf(resetMailTemplate, user.Username, resetLink)
	if err := s.mailer.Send(user.Email, resetMailSubject, body); err != nil {
		// the response stays generic either way, so only log
		s.logger.Error("failed to send password reset mail", "error", err)
	}

	return nil
}

// ConfirmReset validates the uid/token pair and sets the new password.
// Every outstanding reset token and refresh token of the user is
// invalidated afterwards.
func (s *passwordResetService) ConfirmReset(uid, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	decoded, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return ErrInvalidResetLink
	}
	user, err := s.userRepo.FindByID(string(decoded))
	if err != nil {
		return ErrInvalidResetLink
	}

	resetToken, err := s.resetRepo.FindByUserAndToken(user.ID, token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if resetToken.Used || time.Now().After(resetToken.ExpiresAt) {
		return ErrInvalidResetToken
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(user.ID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.resetRepo.MarkUsed(resetToken.ID); err != nil {
		return fmt.Errorf("mark reset token used: %w", err)
	}
	if err := s.resetRepo.InvalidateAllForUser(user.ID); err != nil {
		s.logger.Error("failed to invalidate outstanding reset tokens", "error", err)
	}
	if err := s.refreshTokenRepo.RevokeAllForUser(user.ID); err != nil {
		s.logger.Error("failed to revoke refresh tokens after reset", "error", err)
	}

	return nil
}
