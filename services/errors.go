package services

import "errors"

// Sentinel errors surfaced by the auth service. Handlers match these with
// errors.Is and translate them to HTTP status codes; anything else is an
// internal failure.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so callers cannot enumerate accounts from the error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingFields = errors.New("please fill in all fields")
	ErrEmailTaken    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidOTP    = errors.New("invalid OTP")
	ErrOTPExpired    = errors.New("OTP expired")
)
