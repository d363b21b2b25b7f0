package user

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already taken")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrHRAccessRequired     = errors.New("hr or admin access required")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
)
