// Package store persists user records. The Mongo implementation backs the
// running service; the in-memory one backs tests and local runs without a
// database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/devikasuresh/go-stories/models"
)

// ErrNotFound is returned when no record matches the given key.
var ErrNotFound = errors.New("user not found")

// UserStore is the credential store consumed by the auth service and the
// access guard. SetOTP writes code and expiry together; ResetPassword
// writes the new hash and clears both OTP fields in the same update, so
// the paired fields are never half-set. There is no optimistic locking:
// concurrent SetOTP calls on one record are last-write-wins.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	SetOTP(ctx context.Context, id string, code string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, id string, passwordHash string) error
	List(ctx context.Context) ([]models.User, error)
}
