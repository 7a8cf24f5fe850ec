// Package services holds the authentication and password-reset
// orchestration on top of the user store, the mailer, and the token,
// hashing and OTP helpers.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devikasuresh/go-stories/mailer"
	"github.com/devikasuresh/go-stories/models"
	"github.com/devikasuresh/go-stories/store"
	"github.com/devikasuresh/go-stories/utils"
)

// AuthService handles registration, login, and the three-step password
// reset flow (request -> verify -> reset). All collaborators and secrets
// are injected at construction.
type AuthService struct {
	users     store.UserStore
	mailer    mailer.Mailer
	jwtSecret []byte
	tokenTTL  time.Duration
	otpTTL    time.Duration
}

func NewAuthService(users store.UserStore, m mailer.Mailer, jwtSecret []byte, tokenTTL, otpTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    m,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		otpTTL:    otpTTL,
	}
}

// Register creates an account and returns it with a session token for an
// immediately authenticated session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and mints a session token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return user, token, nil
}

// RequestReset generates a one-time code, stores it with its expiry on
// the user record, and emails it. The code is persisted before delivery
// is attempted, so a send failure leaves a usable code behind.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, expiresAt, err := utils.GenerateOTP(s.otpTTL)
	if err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}

	if err := s.users.SetOTP(ctx, user.ID.Hex(), code, expiresAt); err != nil {
		return err
	}

	subject := "Password Reset OTP"
	body := fmt.Sprintf("Your OTP is: %s\nThis code expires in %d minutes.", code, int(s.otpTTL.Minutes()))
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("sending reset email: %w", err)
	}
	return nil
}

// VerifyOTP checks the supplied code against the stored one. It is a pure
// check: the code stays valid until the reset consumes it, so calling
// this repeatedly with the same code keeps succeeding.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	switch utils.VerifyOTP(user.OTP, user.OTPExpiresAt, code, time.Now()) {
	case utils.OTPInvalid:
		return ErrInvalidOTP
	case utils.OTPExpired:
		return ErrOTPExpired
	}
	return nil
}

// ResetPassword completes the flow: it re-checks the reset window, stores
// the new password hash, and clears the OTP fields in the same update.
// The code itself is not re-compared here; that happened in VerifyOTP.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// No pending reset counts as an expired window.
	if user.OTPExpiresAt.IsZero() || time.Now().After(user.OTPExpiresAt) {
		return ErrOTPExpired
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.users.ResetPassword(ctx, user.ID.Hex(), hash)
}
