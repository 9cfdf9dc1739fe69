package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-craft-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// Tokener defines the token methods handlers use to identify the requester.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always "error"
	// default: error
	Status string `json:"status"`

	// Human readable message
	// default: title: required field is missing
	Message string `json:"message"`

	// Error class
	// default: ValidationError
	Error string `json:"error"`

	// Creation or asset kind the request was about
	// default: painting
	Kind string `json:"kind,omitempty"`
}

// MessageResponse is returned by mutations without a result
// swagger:model MessageResponse
type MessageResponse struct {
	// default: success
	Status string `json:"status"`

	// default: Creation deleted
	Message string `json:"message"`
}

// CreatedResponse is returned when a creation or asset is stored
// swagger:model CreatedResponse
type CreatedResponse struct {
	// default: success
	Status string `json:"status"`

	// Identifier of the new record
	// default: 4f9d6f0e-7a1b-4c11-9a55-0c6e1f7a2b3c
	ID string `json:"id"`
}

const statusSuccess = "success"

// statusFor maps an error class to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError reports err using the error taxonomy. Backend details are not leaked.
func writeError(w http.ResponseWriter, err error, kind string) {
	status := statusFor(err)
	resp := ErrorResponse{
		Status:  "error",
		Message: err.Error(),
		Error:   models.ErrorClass(err),
		Kind:    kind,
	}

	var verr *models.ValidationError
	if errors.As(err, &verr) && verr.Kind != "" {
		resp.Kind = verr.Kind
	}
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "error", err)
		resp.Message = "internal server error"
	}

	writeJSON(w, status, resp)
}

// requester returns the claims of the session token sent with r.
func requester(tokenGetter Tokener, r *http.Request) (*jwt.Claims, error) {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, models.ErrUnauthorized
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, models.ErrUnauthorized
	}
	return claims, nil
}

// queryInt reads a non-negative integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, models.NewValidationError("", name, "must be a non-negative integer")
	}
	return n, nil
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("failed to decode request body", "error", err)
		return models.NewValidationError("", "body", "invalid request body")
	}
	return nil
}
