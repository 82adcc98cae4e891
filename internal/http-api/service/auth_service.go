package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid credentials or unconfirmed account")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthAPI is the slice of the GoTrue client the auth service needs.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password string) (*supabase.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, *supabase.User, error)
	GetUser(ctx context.Context, token string) (*supabase.User, error)
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*dto.RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	ResolveUser(ctx context.Context, token string) (*supabase.User, error)
}

type authService struct {
	auth        AuthAPI
	profileRepo repository.ProfileRepository
	jwtSecret   string
	logger      *slog.Logger
}

// NewAuthService wires the GoTrue client and the profile repository used
// for auto-provisioning. jwtSecret may be empty; when set, token
// resolution verifies HS256 access tokens locally instead of a GoTrue
// round trip.
func NewAuthService(auth AuthAPI, profileRepo repository.ProfileRepository, jwtSecret string, logger *slog.Logger) AuthService {
	return &authService{
		auth:        auth,
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

// Register creates the account and best-effort provisions an empty
// profile. Profile creation failure is logged and swallowed: registration
// still succeeds without the row.
func (s *authService) Register(ctx context.Context, email, password string) (*dto.RegisterResponse, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := s.auth.SignUp(ctx, normalized, password)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if _, err := s.profileRepo.CreateEmpty(ctx, user.ID); err != nil {
		s.logger.Warn("failed to create profile for new user", "user_id", user.ID, "error", err)
	}

	confirmed := user.EmailConfirmedAt != nil && *user.EmailConfirmedAt != ""
	return &dto.RegisterResponse{
		User:                      dto.FromSupabaseUser(user),
		EmailConfirmationRequired: !confirmed,
	}, nil
}

// Login exchanges credentials for a token pair.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	session, user, err := s.auth.SignInWithPassword(ctx, normalized, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	return &dto.AuthResponse{
		User:         dto.FromSupabaseUser(user),
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "bearer",
	}, nil
}

// ResolveUser validates a bearer token and returns its user. With a
// configured JWT secret the check is local; otherwise it is a GoTrue
// lookup.
func (s *authService) ResolveUser(ctx context.Context, token string) (*supabase.User, error) {
	if s.jwtSecret != "" {
		return s.resolveLocal(token)
	}

	user, err := s.auth.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return user, nil
}

func (s *authService) resolveLocal(tokenString string) (*supabase.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &supabase.User{ID: sub, Email: email}, nil
}

// normalizeEmail lowercases and trims the address, rejecting shapes the
// upstream would bounce anyway.
func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	at := strings.LastIndex(normalized, "@")
	if at <= 0 || !strings.Contains(normalized[at+1:], ".") {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
