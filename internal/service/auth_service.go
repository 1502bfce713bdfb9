package service

import (
	"fmt"
	"strings"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"
)

// CredentialStore is the persistence surface the authenticators depend on.
type CredentialStore interface {
	FindUserByEmail(email string) (*models.User, error)
	FindUserByIDWithRelations(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	FindTokenByUserID(userID uint) (*models.Token, error)
	UpsertToken(userID uint, tokenString string) error
	DeleteTokenByUserID(userID uint) (bool, error)
}

// AuditLogger records security-relevant actions.
type AuditLogger interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

type AuthService struct {
	users CredentialStore
	audit AuditLogger
}

func NewAuthService(users CredentialStore, audit AuditLogger) *AuthService {
	return &AuthService{
		users: users,
		audit: audit,
	}
}

// SignUp creates a new user account. Password and confirmation must match;
// the unique email index rejects duplicates.
func (s *AuthService) SignUp(name, email, password, passwordCheck string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}
	if password != passwordCheck {
		return nil, apperr.Validation("passwords do not match")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	userID := user.ID
	_ = s.audit.CreateAuditLog(&userID, "user_signup", fmt.Sprintf("user %s signed up", email))

	return user, nil
}

// SignIn verifies email and password and issues a fresh bearer token. A
// missing user and a wrong password collapse into the same error so callers
// cannot enumerate accounts. Issuing replaces the user's single token row,
// which revokes any previously issued bearer string.
func (s *AuthService) SignIn(email, password string) (string, *models.User, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return "", nil, apperr.InvalidCredentials("incorrect email or password")
		}
		return "", nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return "", nil, apperr.InvalidCredentials("incorrect email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.users.UpsertToken(user.ID, token); err != nil {
		return "", nil, fmt.Errorf("failed to store token: %w", err)
	}

	userID := user.ID
	_ = s.audit.CreateAuditLog(&userID, "user_signin", fmt.Sprintf("user %s signed in", email))

	return token, user, nil
}

// SignOut destroys the user's token row. The signed token stays
// cryptographically valid but will fail the revocation check from now on.
func (s *AuthService) SignOut(userID uint) error {
	deleted, err := s.users.DeleteTokenByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if !deleted {
		return apperr.NotLoggedIn("not logged in")
	}
	return nil
}

// Authenticate resolves a raw Authorization header into the user context.
func (s *AuthService) Authenticate(authHeader string) (*AuthenticatedUser, error) {
	raw, err := parseBearer(authHeader)
	if err != nil {
		return nil, err
	}
	return s.AuthenticateToken(raw)
}

// AuthenticateToken verifies a bearer string as a signed credential and then
// against the user's single live token row. Both checks must pass: the
// signature check alone cannot see a logout, and the row check alone cannot
// see tampering. On success the full user context is loaded.
func (s *AuthService) AuthenticateToken(raw string) (*AuthenticatedUser, error) {
	claims, err := utils.ValidateToken(raw)
	if err != nil {
		return nil, apperr.InvalidToken("invalid or expired token")
	}

	stored, err := s.users.FindTokenByUserID(claims.UserID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.RevokedToken("token has been revoked")
		}
		return nil, err
	}
	if stored.Token != raw {
		return nil, apperr.RevokedToken("token has been revoked")
	}

	user, err := s.users.FindUserByIDWithRelations(claims.UserID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.InvalidToken("invalid or expired token")
		}
		return nil, err
	}

	return NewAuthenticatedUser(user), nil
}

// parseBearer extracts the raw token from an Authorization header. The header
// must be exactly two whitespace-separated fields with a case-insensitive
// Bearer scheme.
func parseBearer(authHeader string) (string, error) {
	fields := strings.Fields(authHeader)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", apperr.MalformedAuthHeader("invalid authorization format, use: Bearer <token>")
	}
	return fields[1], nil
}
