package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// MinUsernameLength is the shortest accepted username.
const MinUsernameLength = 2

// UserStore defines the user operations needed for login and registration.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error) // Returns a user by username
	GetByEmail(ctx context.Context, email string) (*models.User, error)       // Returns a user by email
	Create(ctx context.Context, u models.User) error                          // Persists a new user
	Touch(ctx context.Context, id models.UserID) error                        // Updates lastActive
}

// TokenIssuer generates session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID models.UserID, username string) (string, error)
}

// TokenRevoker remembers logged-out token ids until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles login, registration and logout.
type AuthService struct {
	users   UserStore
	tokens  TokenIssuer
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil.
func NewAuthService(users UserStore, tokens TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
	}
}

// Login finds or creates the user named username and returns a session token.
// No password is checked.
func (svc *AuthService) Login(ctx context.Context, username string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if len([]rune(username)) < MinUsernameLength {
		return nil, "", models.NewValidationError("", "username", fmt.Sprintf("must be at least %d characters", MinUsernameLength))
	}

	user, err := svc.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if err := svc.users.Touch(ctx, user.ID); err != nil {
			logger.Log.Errorw("failed to touch user", "user_id", user.ID, "err", err)
			return nil, "", models.NewBackendError("touch user", err)
		}
	case errors.Is(err, models.ErrNotFound):
		user, err = svc.create(ctx, models.User{Username: username})
		if errors.Is(err, models.ErrConflict) {
			// lost a race with a concurrent first login
			user, err = svc.users.GetByUsername(ctx, username)
		}
		if err != nil {
			return nil, "", models.NewBackendError("create user", err)
		}
	default:
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, "", models.NewBackendError("get user", err)
	}

	token, err := svc.issue(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Register creates a user with a hashed password and returns a session token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case len([]rune(username)) < MinUsernameLength:
		return nil, "", models.NewValidationError("", "username", fmt.Sprintf("must be at least %d characters", MinUsernameLength))
	case email == "":
		return nil, "", models.NewValidationError("", "email", "required field is missing")
	case password == "":
		return nil, "", models.NewValidationError("", "password", "required field is missing")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", models.NewValidationError("", "email", "invalid email address")
	}

	if _, err := svc.users.GetByEmail(ctx, email); err == nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, "", fmt.Errorf("%w: email already registered", models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, "", models.NewBackendError("get user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", models.NewBackendError("hash password", err)
	}

	user, err := svc.create(ctx, models.User{
		Username:     username,
		Email:        &email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, "", fmt.Errorf("%w: username already taken", models.ErrConflict)
		}
		return nil, "", models.NewBackendError("create user", err)
	}

	token, err := svc.issue(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes a session token id for the rest of its lifetime.
// Without a revocation store the client simply discards the token.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if svc.revoker == nil {
		logger.Log.Warnw("revocation store not configured, skipping logout", "jti", tokenID)
		return nil
	}
	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "jti", tokenID, "err", err)
		return models.NewBackendError("revoke token", err)
	}
	return nil
}

func (svc *AuthService) create(ctx context.Context, u models.User) (*models.User, error) {
	now := time.Now().UTC()
	u.ID = models.NewUserID()
	u.CreatedAt = now
	u.LastActive = now
	if err := svc.users.Create(ctx, u); err != nil {
		logger.Log.Errorw("failed to save user", "username", u.Username, "err", err)
		return nil, err
	}
	logger.Log.Infow("user created", "user_id", u.ID, "username", u.Username)
	return &u, nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.User) (string, error) {
	token, err := svc.tokens.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", models.NewBackendError("generate token", err)
	}
	return token, nil
}
