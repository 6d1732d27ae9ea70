package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository"
	"jobunyacar-backend/internal/security"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = time.Hour
)

type authService struct {
	store                    repository.Store
	tokens                   security.TokenManager
	emailSvc                 EmailService
	requireEmailVerification bool
}

func NewAuthService(store repository.Store, tokens security.TokenManager, emailSvc EmailService, requireEmailVerification bool) AuthService {
	return &authService{
		store:                    store,
		tokens:                   tokens,
		emailSvc:                 emailSvc,
		requireEmailVerification: requireEmailVerification,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	user := &domain.User{
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:      string(hash),
		FullName:          strings.TrimSpace(input.FullName),
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		LicenseNumber:     input.LicenseNumber,
		Role:              domain.RoleCustomer,
		AgreeTerms:        input.AgreeTerms,
		Active:            !s.requireEmailVerification,
		VerificationToken: &token,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendVerificationEmail(ctx, user.Email, user.FullName, token); err != nil {
		// The account row exists at this point; mail delivery must not
		// roll it back.
		logger.Warn("verification email failed", "user_id", user.ID, "error", err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

func validateRegisterInput(input RegisterInput) error {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("email", "a valid email address is required")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return domain.NewValidationError("full_name", "full name is required")
	}
	if len(input.Password) < minPasswordLength {
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}
	if input.Password != input.PasswordConfirm {
		return domain.NewValidationError("password_confirm", "passwords do not match")
	}
	if !input.AgreeTerms {
		return domain.NewValidationError("agree_terms", "you must accept the terms of service")
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.NewValidationError("token", "verification token is required")
	}

	user, err := s.store.Users().GetByVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user.Active = true
	user.VerificationToken = nil
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("email verified", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrNotFound {
			// Same answer as a wrong password, so login cannot be used
			// to probe which emails are registered.
			return "", "", domain.ErrUnauthenticated
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", domain.ErrUnauthenticated
	}
	if !user.Active {
		return "", "", domain.ErrUnauthenticated
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	logger.Info("user logged in", "user_id", user.ID)
	return access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil || claims.Type != security.TokenTypeRefresh {
		return "", "", domain.ErrUnauthenticated
	}

	// Reload the user so a deactivated account cannot keep minting
	// access tokens off an old refresh token.
	user, err := s.store.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", domain.ErrUnauthenticated
	}
	if !user.Active {
		return "", "", domain.ErrUnauthenticated
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

// Logout is stateless: tokens stay valid until expiry and clients drop
// them locally. Kept as an endpoint so the API shape matches clients
// that expect to call it.
func (s *authService) Logout(ctx context.Context, refresh string) error {
	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrNotFound {
			// Pretend success so the endpoint cannot enumerate accounts.
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires
	if err := s.store.Users().Update(ctx, user); err != nil {
		return err
	}

	if err := s.emailSvc.SendPasswordResetEmail(ctx, user.Email, user.FullName, token); err != nil {
		logger.Warn("password reset email failed", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return domain.NewValidationError("token", "reset token is required")
	}
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}

	user, err := s.store.Users().GetByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user.ResetTokenExpires == nil || time.Now().UTC().After(*user.ResetTokenExpires) {
		return domain.NewValidationError("token", "reset token has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.ResetToken = nil
	user.ResetTokenExpires = nil
	if err := s.store.Users().Update(ctx, user); err != nil {
		return err
	}

	logger.Info("password reset", "user_id", user.ID)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, principal *domain.User, oldPassword, newPassword string) error {
	if err := requireAuthenticated(principal); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.NewValidationError("old_password", "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	principal.PasswordHash = string(hash)
	if err := s.store.Users().Update(ctx, principal); err != nil {
		return err
	}

	logger.Info("password changed", "user_id", principal.ID)
	return nil
}
