package auth

import (
	"context"
	"testing"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/user"
	jwtpkg "github.com/bavaria-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = "user-created"
	r.users[u.ID] = u
	return u, nil
}

func newTestService(users ...user.User) user.AuthService {
	repo := &stubUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	jwtService := jwtpkg.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	svc := newTestService(user.User{
		ID:           "user-1",
		Username:     "hr.manager",
		PasswordHash: hashed(t, "correct-horse"),
		Role:         user.RoleHR,
		IsActive:     true,
	})

	t.Run("valid credentials", func(t *testing.T) {
		resp, refreshToken, refreshExpiresAt, err := svc.Login(context.Background(), user.LoginRequest{
			Username: "hr.manager",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Greater(t, refreshExpiresAt, int64(0))
		assert.Equal(t, "hr", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), user.LoginRequest{
			Username: "hr.manager",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown user maps to same error", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), user.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestLogin_InactiveUser(t *testing.T) {
	svc := newTestService(user.User{
		ID:           "user-1",
		Username:     "former.employee",
		PasswordHash: hashed(t, "pw-still-valid"),
		Role:         user.RoleViewer,
		IsActive:     false,
	})

	_, _, _, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "former.employee",
		Password: "pw-still-valid",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefresh(t *testing.T) {
	svc := newTestService(user.User{
		ID:           "user-1",
		Username:     "hr.manager",
		PasswordHash: hashed(t, "correct-horse"),
		Role:         user.RoleHR,
		IsActive:     true,
	})

	_, refreshToken, _, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "hr.manager",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		resp, err := svc.Refresh(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("access token is rejected as refresh", func(t *testing.T) {
		resp, _, _, err := svc.Login(context.Background(), user.LoginRequest{
			Username: "hr.manager",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), resp.AccessToken)
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(context.Background(), refreshToken))

		_, err := svc.Refresh(context.Background(), refreshToken)
		assert.ErrorIs(t, err, user.ErrRefreshTokenRevoked)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "new.viewer",
		Email:    "viewer@example.com",
		Password: "long-enough-pw",
		Role:     "viewer",
	})

	require.NoError(t, err)
	assert.Equal(t, "new.viewer", resp.Username)
	assert.Equal(t, "viewer", resp.Role)
	assert.True(t, resp.IsActive)
}

func TestRoleChecks(t *testing.T) {
	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.True(t, user.RoleAdmin.IsHR())
	assert.False(t, user.RoleHR.IsAdmin())
	assert.True(t, user.RoleHR.IsHR())
	assert.False(t, user.RoleViewer.IsHR())
}
