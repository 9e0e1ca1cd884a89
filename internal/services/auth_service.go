package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/pkg/googleauth"

	"github.com/dgrijalva/jwt-go"
)

// Claims are the session claims carried by a validated token.
type Claims struct {
	UserID string
	Email  string
}

// AuthService exchanges Google identities for application sessions and
// validates session tokens.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// SignIn looks up the user behind a verified Google profile, registering them
// with the default role on first sign-in, and mints a session token.
func (s *AuthService) SignIn(profile googleauth.Profile) (string, error) {
	user, err := s.userRepo.GetByID(profile.ID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("sign-in lookup failed", "email", profile.Email, "error", err)
			return "", fmt.Errorf("failed to sign in user %s: %w", profile.Email, err)
		}

		user = &models.User{
			ID:        profile.ID,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Avatar:    profile.Avatar,
			Role:      models.RoleUser,
		}
		if err := s.userRepo.Create(user); err != nil {
			s.logger.Error("user registration failed", "email", profile.Email, "error", err)
			return "", fmt.Errorf("failed to register user %s: %w", profile.Email, err)
		}
		s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	}

	return s.GenerateToken(user.ID, user.Email)
}

// GenerateToken mints a signed session token carrying the user id and email.
func (s *AuthService) GenerateToken(userID, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token. It rejects tokens with
// a bad signature, an expired lifetime, or a payload missing sub or email.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, fmt.Errorf("token payload missing subject or email: %w", apperrors.ErrUnauthorized)
	}

	return &Claims{UserID: sub, Email: email}, nil
}
