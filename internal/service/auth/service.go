package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/user"
	jwtpkg "github.com/bavaria-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwtpkg.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwtpkg.Service) user.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Login implements user.AuthService. It returns the access payload plus the
// refresh token and its expiry for the cookie.
func (s *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, "", 0, err
	}

	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same failure as a bad password; do not leak which one it was.
			return user.LoginResponse{}, "", 0, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, "", 0, err
	}

	if !u.IsActive {
		return user.LoginResponse{}, "", 0, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, "", 0, user.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return user.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return user.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        mapToResponse(u),
	}, refreshToken, refreshExpiresAt, nil
}

// Refresh implements user.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (user.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return user.LoginResponse{}, user.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return user.LoginResponse{}, user.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return user.LoginResponse{}, user.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	userIDStr, strOK := userID.(string)
	if !ok || !strOK || userIDStr == "" {
		return user.LoginResponse{}, user.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userIDStr)
	if err != nil {
		return user.LoginResponse{}, err
	}
	if !u.IsActive {
		return user.LoginResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return user.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        mapToResponse(u),
	}, nil
}

// Logout implements user.AuthService.
func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// CreateUser implements user.AuthService.
func (s *AuthServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(created), nil
}

// ListUsers implements user.AuthService.
func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapToResponse(u))
	}

	return responses, nil
}

// Me implements user.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.UserResponse{}, user.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(u), nil
}

func mapToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
