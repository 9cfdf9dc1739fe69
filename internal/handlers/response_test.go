package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// expectSession makes tok report a valid session for userID.
func expectSession(tok *MockTokener, userID models.UserID) {
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
	tok.EXPECT().GetClaims(gomock.Any(), "TOKEN").Return(&jwt.Claims{UserID: userID}, nil)
}

// expectNoSession makes tok report a request without a token.
func expectNoSession(tok *MockTokener) {
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing token"))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		kind         string
		expectedCode int
		expected     ErrorResponse
	}{
		{
			name:         "validation keeps its own kind",
			err:          models.NewValidationError("bracelet", "title", "required field is missing"),
			kind:         "painting",
			expectedCode: http.StatusBadRequest,
			expected: ErrorResponse{
				Status: "error", Message: "title: required field is missing", Error: "ValidationError", Kind: "bracelet",
			},
		},
		{
			name:         "not found",
			err:          fmt.Errorf("creation x: %w", models.ErrNotFound),
			kind:         "painting",
			expectedCode: http.StatusNotFound,
			expected: ErrorResponse{
				Status: "error", Message: "creation x: not found", Error: "NotFoundError", Kind: "painting",
			},
		},
		{
			name:         "forbidden",
			err:          &models.AuthorizationError{ResourceID: "c1", Requester: "u2"},
			expectedCode: http.StatusForbidden,
			expected: ErrorResponse{
				Status: "error", Message: `user "u2" is not allowed to modify c1`, Error: "AuthorizationError",
			},
		},
		{
			name:         "unauthorized",
			err:          models.ErrUnauthorized,
			expectedCode: http.StatusUnauthorized,
			expected:     ErrorResponse{Status: "error", Message: "unauthorized", Error: "AuthenticationError"},
		},
		{
			name:         "conflict",
			err:          fmt.Errorf("%w: username already taken", models.ErrConflict),
			expectedCode: http.StatusConflict,
			expected: ErrorResponse{
				Status: "error", Message: "already exists: username already taken", Error: "ConflictError",
			},
		},
		{
			name:         "backend details are masked",
			err:          models.NewBackendError("insert creation", errors.New("dial tcp 10.0.0.1:5432")),
			expectedCode: http.StatusInternalServerError,
			expected:     ErrorResponse{Status: "error", Message: "internal server error", Error: "BackendError"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err, tt.kind)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, decodeError(t, w))
		})
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
		wantErr  bool
	}{
		{"absent", "", 7, false},
		{"value", "limit=15", 15, false},
		{"zero", "limit=0", 0, false},
		{"negative", "limit=-1", 0, true},
		{"not a number", "limit=ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/paintings?"+tt.query, nil)
			n, err := queryInt(req, "limit", 7)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}
