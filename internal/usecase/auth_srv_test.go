package usecase

import (
	"context"
	"testing"
	"time"

	"brook-rent/internal/dto/request"
	"brook-rent/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (AuthService, *fakeUserRepo, *captureDeliverer) {
	t.Helper()

	repos, users, _, _ := newTestRepos()
	deliverer := &captureDeliverer{}
	svc := NewAuthService(repos, testConfig(), deliverer, zap.NewNop())
	return svc, users, deliverer
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:    email,
		Password: "hunter22",
		Role:     "lister",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", user.Email)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// token claims decode back to the same identity
	claims, err := utils.ParseToken(resp.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@b.co", claims.Email)

	// default policy: 7 days
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("a@b.co"))
	require.EqualError(t, err, "email already registered")
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"bad email", &request.RegisterRequest{Email: "not-an-email", Password: "hunter22", Role: "renter"}},
		{"short password", &request.RegisterRequest{Email: "a@b.co", Password: "abc", Role: "renter"}},
		{"bad role", &request.RegisterRequest{Email: "a@b.co", Password: "hunter22", Role: "admin"}},
		{"missing role", &request.RegisterRequest{Email: "a@b.co", Password: "hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	// unknown email and wrong password yield the same message
	_, errUnknown := svc.Login(ctx, &request.LoginRequest{Email: "ghost@b.co", Password: "hunter22"})
	_, errWrongPw := svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "wrong-pass"})

	require.EqualError(t, errUnknown, "invalid email or password")
	require.EqualError(t, errWrongPw, "invalid email or password")
}

func TestLogin_RememberMe(t *testing.T) {
	t.Parallel()

	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "hunter22", RememberMe: true})
	require.NoError(t, err)

	// longer expiry policy
	claims, err := utils.ParseToken(resp.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	// opaque remember token persisted on the row
	stored := users.get(user.ID)
	require.NotNil(t, stored.RememberToken)
	assert.Len(t, *stored.RememberToken, 64)
}

func TestLogout_ClearsRememberTokenOnly(t *testing.T) {
	t.Parallel()

	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "hunter22", RememberMe: true})
	require.NoError(t, err)
	require.NotNil(t, users.get(user.ID).RememberToken)

	require.NoError(t, svc.Logout(ctx, user.ID))
	assert.Nil(t, users.get(user.ID).RememberToken)

	// the bearer token is not revoked server-side; it still verifies
	_, err = utils.ParseToken(resp.Token, testConfig().JWT.Secret)
	assert.NoError(t, err)
}

func TestForgotPassword_NoExistenceLeak(t *testing.T) {
	t.Parallel()

	svc, users, deliverer := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	// unknown email: same nil outcome, no mutation, no delivery
	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ghost@b.co"}))
	assert.Empty(t, deliverer.tokens)

	// known email: token persisted and delivered out-of-band
	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))
	require.Len(t, deliverer.tokens, 1)
	assert.Len(t, deliverer.lastToken(), 64)

	stored := users.get(user.ID)
	require.NotNil(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiry)
	assert.Equal(t, deliverer.lastToken(), *stored.ResetToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetTokenExpiry, time.Minute)
}

func TestForgotPassword_OverwritesOutstandingToken(t *testing.T) {
	t.Parallel()

	svc, users, deliverer := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))
	first := deliverer.lastToken()

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))
	second := deliverer.lastToken()

	require.NotEqual(t, first, second)
	// at most one live token per user: only the newest matches
	assert.Equal(t, second, *users.get(user.ID).ResetToken)

	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: first, NewPassword: "newpass99"})
	require.EqualError(t, err, "invalid or expired token")
}

func TestResetPassword_Success(t *testing.T) {
	t.Parallel()

	svc, users, deliverer := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))

	token := deliverer.lastToken()
	require.NoError(t, svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: token, NewPassword: "newpass99"}))

	// both reset columns cleared in the same update
	stored := users.get(user.ID)
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpiry)

	// old password out, new password in
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "hunter22"})
	require.EqualError(t, err, "invalid email or password")
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "a@b.co", Password: "newpass99"})
	require.NoError(t, err)
}

func TestResetPassword_ReplayFails(t *testing.T) {
	t.Parallel()

	svc, _, deliverer := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))

	token := deliverer.lastToken()
	require.NoError(t, svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: token, NewPassword: "newpass99"}))

	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: token, NewPassword: "other-pass"})
	require.EqualError(t, err, "invalid or expired token")
}

func TestResetPassword_ExpiredAndUnknownIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, users, deliverer := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("a@b.co"))
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@b.co"}))

	users.forceExpire(user.ID)

	errExpired := svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: deliverer.lastToken(), NewPassword: "newpass99"})
	errNever := svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: "deadbeef", NewPassword: "newpass99"})

	require.EqualError(t, errExpired, "invalid or expired token")
	require.EqualError(t, errNever, "invalid or expired token")
}

func TestResetPassword_ShortPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{Token: "whatever", NewPassword: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
