package user

import "context"

// AuthService handles credential checks and token issuance. Role enforcement
// happens in the HTTP middleware; domain services trust the caller.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	Me(ctx context.Context) (UserResponse, error)
}
