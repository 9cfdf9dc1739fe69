package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-craft-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username string) (*models.User, string, error)
}

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
}

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Display name, at least 2 characters
	// required: true
	// default: john_doe
	Username string `json:"username"`
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SessionResponse represents a successful login or registration
// swagger:model SessionResponse
type SessionResponse struct {
	// default: success
	Status string `json:"status"`

	// JWT token, also set as the gallery_session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`

	// default: 4f9d6f0e-7a1b-4c11-9a55-0c6e1f7a2b3c
	UserID string `json:"userId"`

	// default: john_doe
	Username string `json:"username"`
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewLoginHandler returns an HTTP handler for username login.
// @Summary User login
// @Description Find or create a user by name and start a session. No password is checked.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SessionResponse "Session started"
// @Failure 400 {object} handlers.ErrorResponse "Invalid username"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err, "")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username)
		if err != nil {
			writeError(w, err, "")
			return
		}

		setSessionCookie(w, token, sessionTTL)
		writeJSON(w, http.StatusOK, SessionResponse{
			Status:   statusSuccess,
			Token:    token,
			UserID:   user.ID.String(),
			Username: user.Username,
		})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create a user with email and password and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.SessionResponse "User registered successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err, "")
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(w, err, "")
			return
		}

		setSessionCookie(w, token, sessionTTL)
		writeJSON(w, http.StatusCreated, SessionResponse{
			Status:   statusSuccess,
			Token:    token,
			UserID:   user.ID.String(),
			Username: user.Username,
		})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Logout
// @Description Revoke the current session token and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := requester(tokenGetter, r)
		if err != nil {
			writeError(w, err, "")
			return
		}

		if err := svc.Logout(r.Context(), claims.ID, claims.TTL()); err != nil {
			writeError(w, err, "")
			return
		}

		http.SetCookie(w, &http.Cookie{Name: jwt.CookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		writeJSON(w, http.StatusOK, MessageResponse{Status: statusSuccess, Message: "Logged out"})
	}
}
