package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// OTPStatus is the outcome of checking a supplied reset code.
type OTPStatus int

const (
	OTPValid OTPStatus = iota
	OTPInvalid
	OTPExpired
)

// GenerateOTP produces a 4-digit reset code drawn uniformly from
// [1000, 9999] and its expiry, ttl from now.
func GenerateOTP(ttl time.Duration) (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", time.Time{}, err
	}
	code := n.Int64() + 1000
	return strconv.FormatInt(code, 10), time.Now().Add(ttl), nil
}

// VerifyOTP checks a supplied code against the stored one. Equality is
// checked before expiry, so an expired-but-correct code reports
// OTPExpired while a wrong code always reports OTPInvalid. A code is
// valid up to and including expiresAt itself.
func VerifyOTP(stored string, expiresAt time.Time, supplied string, now time.Time) OTPStatus {
	if supplied == "" || supplied != stored {
		return OTPInvalid
	}
	if now.After(expiresAt) {
		return OTPExpired
	}
	return OTPValid
}
