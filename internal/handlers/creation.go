package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=creation.go -destination=creation_mock.go -package=handlers

// CreationInserter stores new creations.
type CreationInserter interface {
	InsertCreation(ctx context.Context, kind models.Kind, fields models.CreationFields, owner models.UserID) (string, error)
}

// CreationLister lists creations of one kind.
type CreationLister interface {
	ListCreations(ctx context.Context, kind models.Kind, filters map[string]string, sortBy string, limit, offset int) ([]models.Creation, int, error)
}

// CreationGetter reads one creation and counts the view.
type CreationGetter interface {
	GetCreation(ctx context.Context, kind models.Kind, id string) (*models.Creation, error)
}

// CreationDeleter removes creations on behalf of their owner.
type CreationDeleter interface {
	DeleteCreation(ctx context.Context, kind models.Kind, id string, requester models.UserID) error
}

// CreationLiker adds likes.
type CreationLiker interface {
	LikeCreation(ctx context.Context, id, creationType string, actor models.UserID) error
}

// CreationListResponse is one page of creations
// swagger:model CreationListResponse
type CreationListResponse struct {
	// default: success
	Status string            `json:"status"`
	Items  []models.Creation `json:"items"`

	// Number of creations matching the filters
	// default: 42
	Total int `json:"total"`

	// Number of items in this page
	// default: 20
	Returned int `json:"returned"`
}

// CreationResponse wraps a single creation
// swagger:model CreationResponse
type CreationResponse struct {
	// default: success
	Status string           `json:"status"`
	Item   *models.Creation `json:"item"`
}

// LikeRequest represents the JSON body of a like
// swagger:model LikeRequest
type LikeRequest struct {
	// Kind of the liked creation
	// required: true
	// default: painting
	CreationType string `json:"creationType"`
}

// NewInsertCreationHandler returns an HTTP handler that stores a creation of one kind.
// @Summary Save a creation
// @Description Validate the kind-specific required fields and store the creation for the current user
// @Tags creations
// @Accept json
// @Produce json
// @Param collection path string true "paintings, arrangements or bracelets"
// @Param creation body models.CreationFields true "Creation fields"
// @Success 201 {object} handlers.CreatedResponse "Creation saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /{collection} [post]
// @Security BearerAuth
func NewInsertCreationHandler(kind models.Kind, svc CreationInserter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := requester(tokenGetter, r)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		var fields models.CreationFields
		if err := decodeJSON(r, &fields); err != nil {
			writeError(w, err, string(kind))
			return
		}

		id, err := svc.InsertCreation(r.Context(), kind, fields, claims.UserID)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		logger.Log.Infow("creation saved", "kind", kind, "id", id, "owner", claims.UserID)
		writeJSON(w, http.StatusCreated, CreatedResponse{Status: statusSuccess, ID: id})
	}
}

// NewListCreationsHandler returns an HTTP handler that lists creations of one kind.
// @Summary List creations
// @Description Paginated listing with optional equality filters (productType, vesselType or bandType by kind, and owner)
// @Tags creations
// @Produce json
// @Param collection path string true "paintings, arrangements or bracelets"
// @Param limit query int false "Page size, default 20, at most 100"
// @Param offset query int false "Items to skip"
// @Param sortBy query string false "createdAt, likes, views or title, prefix - for descending" default(-createdAt)
// @Param owner query string false "Owner user id"
// @Success 200 {object} handlers.CreationListResponse "Creations"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Router /{collection} [get]
func NewListCreationsHandler(kind models.Kind, svc CreationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}
		offset, err := queryInt(r, "offset", 0)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		q := r.URL.Query()
		filters := map[string]string{}
		for _, field := range []string{kind.FilterField(), "owner"} {
			if v := q.Get(field); v != "" {
				filters[field] = v
			}
		}

		items, total, err := svc.ListCreations(r.Context(), kind, filters, q.Get("sortBy"), limit, offset)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		writeJSON(w, http.StatusOK, CreationListResponse{
			Status:   statusSuccess,
			Items:    items,
			Total:    total,
			Returned: len(items),
		})
	}
}

// NewGetCreationHandler returns an HTTP handler that reads one creation.
// @Summary Get a creation
// @Description Returns the creation and counts one view. The returned views exclude this read.
// @Tags creations
// @Produce json
// @Param collection path string true "paintings, arrangements or bracelets"
// @Param id path string true "Creation id"
// @Success 200 {object} handlers.CreationResponse "Creation"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /{collection}/{id} [get]
func NewGetCreationHandler(kind models.Kind, svc CreationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetCreation(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err, string(kind))
			return
		}
		writeJSON(w, http.StatusOK, CreationResponse{Status: statusSuccess, Item: c})
	}
}

// NewDeleteCreationHandler returns an HTTP handler that deletes a creation owned by the requester.
// @Summary Delete a creation
// @Tags creations
// @Produce json
// @Param collection path string true "paintings, arrangements or bracelets"
// @Param id path string true "Creation id"
// @Success 200 {object} handlers.MessageResponse "Creation deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /{collection}/{id} [delete]
// @Security BearerAuth
func NewDeleteCreationHandler(kind models.Kind, svc CreationDeleter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := requester(tokenGetter, r)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		if err := svc.DeleteCreation(r.Context(), kind, chi.URLParam(r, "id"), claims.UserID); err != nil {
			writeError(w, err, string(kind))
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: statusSuccess, Message: "Creation deleted"})
	}
}

// NewLikeCreationHandler returns an HTTP handler that likes a creation.
// @Summary Like a creation
// @Description Adds one like. Repeated likes all count.
// @Tags creations
// @Accept json
// @Produce json
// @Param id path string true "Creation id"
// @Param like body handlers.LikeRequest true "Like Request"
// @Success 200 {object} handlers.MessageResponse "Liked"
// @Failure 400 {object} handlers.ErrorResponse "Unknown creation type"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /creations/{id}/like [post]
// @Security BearerAuth
func NewLikeCreationHandler(svc CreationLiker, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := requester(tokenGetter, r)
		if err != nil {
			writeError(w, err, "")
			return
		}

		var req LikeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err, "")
			return
		}

		if err := svc.LikeCreation(r.Context(), chi.URLParam(r, "id"), req.CreationType, claims.UserID); err != nil {
			writeError(w, err, req.CreationType)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: statusSuccess, Message: "Creation liked"})
	}
}
