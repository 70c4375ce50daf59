package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for stored password hashes.
const bcryptCost = 10

const invalidCredentials = "Credentials are not valid"

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterInput is the data needed to open an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// AuthResult is a user together with a freshly signed token. The user's
// fields are flattened into the JSON object.
type AuthResult struct {
	*models.User
	Token string `json:"token"`
}

// Register stores a new user with a hashed password and signs a token for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hashedPassword),
		FullName: input.FullName,
		IsActive: true,
		Roles:    models.StringList{string(models.RoleUser)},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, handleDBError("register user", err)
	}

	return s.result(user)
}

// Login checks the credentials and signs a token for the user. Every
// rejection carries the same message so callers cannot tell which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrUnauthorized, invalidCredentials)
		}
		return nil, handleDBError("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, newError(ErrUnauthorized, invalidCredentials)
	}
	if !user.IsActive {
		return nil, newError(ErrUnauthorized, invalidCredentials)
	}

	return s.result(user)
}

// CheckStatus re-issues a token for an already authenticated user.
func (s *AuthService) CheckStatus(_ context.Context, user *models.User) (*AuthResult, error) {
	if user == nil {
		return nil, newError(ErrUnauthorized, "User not found (request)")
	}
	return s.result(user)
}

func (s *AuthService) result(user *models.User) (*AuthResult, error) {
	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &AuthResult{User: user, Token: token}, nil
}

// IssueToken signs a token over the user id.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Printf("Token signing error: %v", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Authenticate resolves a bearer token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, newError(ErrUnauthorized, "Token not valid")
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, newError(ErrUnauthorized, "Token not valid")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrUnauthorized, "Token not valid")
		}
		return nil, handleDBError("authenticate", err)
	}
	if !user.IsActive {
		return nil, newError(ErrUnauthorized, "User is inactive, talk with an admin")
	}
	return user, nil
}
