package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a stored account record. Password holds the bcrypt hash and is
// never serialized. OTP and OTPExpiresAt are set together when a password
// reset is requested and cleared together when it completes; zero values
// mean no reset is pending.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`

	OTP          string    `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt time.Time `bson:"otp_expires_at,omitempty" json:"-"`

	// Alternate token-bound reset binding kept on the record for parity
	// with the stored document shape; the email-keyed OTP flow above is
	// the one in use.
	ResetToken          string    `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiresAt time.Time `bson:"reset_token_expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
