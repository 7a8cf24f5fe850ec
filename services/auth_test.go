package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devikasuresh/go-stories/store"
	"github.com/devikasuresh/go-stories/utils"
)

var testSecret = []byte("test-secret")

type sentMail struct {
	to, subject, body string
}

// fakeMailer records deliveries instead of talking to SMTP.
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newTestService(t *testing.T) (*AuthService, *store.MemoryUserStore, *fakeMailer) {
	t.Helper()
	users := store.NewMemoryUserStore()
	m := &fakeMailer{}
	svc := NewAuthService(users, m, testSecret, time.Hour, 5*time.Minute)
	return svc, users, m
}

func register(t *testing.T, svc *AuthService, email string) {
	t.Helper()
	_, _, err := svc.Register(context.Background(), "A", email, "secret1")
	require.NoError(t, err)
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	user, token, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), userID)

	// plaintext never stored
	require.NotEqual(t, "secret1", user.Password)
}

func TestRegister_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	for _, in := range [][3]string{
		{"", "a@x.com", "secret1"},
		{"A", "", "secret1"},
		{"A", "a@x.com", ""},
	} {
		_, _, err := svc.Register(ctx, in[0], in[1], in[2])
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	register(t, svc, "a@x.com")

	_, _, err := svc.Register(ctx, "B", "a@x.com", "another-password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	register(t, svc, "a@x.com")

	user, token, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	userID, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), userID)

	// wrong password and unknown email yield the same error
	_, _, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequestReset_PersistsCodeAndExpiryTogether(t *testing.T) {
	ctx := context.Background()
	svc, users, m := newTestService(t)
	register(t, svc, "a@x.com")

	require.NoError(t, svc.RequestReset(ctx, "a@x.com"))

	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.OTP)
	require.False(t, user.OTPExpiresAt.IsZero())

	n, err := strconv.Atoi(user.OTP)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 1000)
	require.LessOrEqual(t, n, 9999)

	require.Len(t, m.sent, 1)
	require.Equal(t, "a@x.com", m.sent[0].to)
	require.Contains(t, m.sent[0].body, user.OTP)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.ErrorIs(t, svc.RequestReset(context.Background(), "nobody@x.com"), ErrUserNotFound)
}

func TestRequestReset_MailerFailurePropagates(t *testing.T) {
	ctx := context.Background()
	svc, users, m := newTestService(t)
	register(t, svc, "a@x.com")

	m.err = errors.New("smtp down")
	err := svc.RequestReset(ctx, "a@x.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUserNotFound)

	// the code was already persisted before delivery was attempted
	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.OTP)
}

func TestVerifyOTP_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	register(t, svc, "a@x.com")
	require.NoError(t, svc.RequestReset(ctx, "a@x.com"))

	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	code := user.OTP

	require.NoError(t, svc.VerifyOTP(ctx, "a@x.com", code))
	require.NoError(t, svc.VerifyOTP(ctx, "a@x.com", code), "verify is a pure check")

	after, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, code, after.OTP, "verify must not mutate the record")
	require.Equal(t, user.OTPExpiresAt, after.OTPExpiresAt)
}

func TestVerifyOTP_WrongAndExpired(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	register(t, svc, "a@x.com")
	require.NoError(t, svc.RequestReset(ctx, "a@x.com"))

	require.ErrorIs(t, svc.VerifyOTP(ctx, "a@x.com", "0000"), ErrInvalidOTP)
	require.ErrorIs(t, svc.VerifyOTP(ctx, "nobody@x.com", "0000"), ErrUserNotFound)

	// simulate the 5-minute window lapsing
	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, users.SetOTP(ctx, user.ID.Hex(), user.OTP, time.Now().Add(-time.Second)))

	require.ErrorIs(t, svc.VerifyOTP(ctx, "a@x.com", user.OTP), ErrOTPExpired)
	// wrong code on an expired window still reports invalid, not expired
	require.ErrorIs(t, svc.VerifyOTP(ctx, "a@x.com", "0000"), ErrInvalidOTP)
}

func TestResetPassword_FullFlow(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	register(t, svc, "a@x.com")
	require.NoError(t, svc.RequestReset(ctx, "a@x.com"))

	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyOTP(ctx, "a@x.com", user.OTP))

	require.NoError(t, svc.ResetPassword(ctx, "a@x.com", "newpass1"))

	// code and expiry cleared together
	after, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Empty(t, after.OTP)
	require.True(t, after.OTPExpiresAt.IsZero())

	_, _, err = svc.Login(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "a@x.com", "newpass1")
	require.NoError(t, err)

	// the reset consumed the window; a second reset needs a new request
	require.ErrorIs(t, svc.ResetPassword(ctx, "a@x.com", "another1"), ErrOTPExpired)
}

func TestResetPassword_Errors(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	register(t, svc, "a@x.com")

	require.ErrorIs(t, svc.ResetPassword(ctx, "", "newpass1"), ErrMissingFields)
	require.ErrorIs(t, svc.ResetPassword(ctx, "a@x.com", ""), ErrMissingFields)
	require.ErrorIs(t, svc.ResetPassword(ctx, "nobody@x.com", "newpass1"), ErrUserNotFound)

	// no reset requested yet
	require.ErrorIs(t, svc.ResetPassword(ctx, "a@x.com", "newpass1"), ErrOTPExpired)

	// window lapsed after the request
	require.NoError(t, svc.RequestReset(ctx, "a@x.com"))
	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, users.SetOTP(ctx, user.ID.Hex(), user.OTP, time.Now().Add(-time.Second)))
	require.ErrorIs(t, svc.ResetPassword(ctx, "a@x.com", "newpass1"), ErrOTPExpired)
}
