package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/api/middleware"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/config"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"github.com/rohits-web03/quick4lio/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	Feed(ctx context.Context, limit int) ([]models.Post, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error)
}

// MediaStore is the object storage behind image uploads.
type MediaStore interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PublicURL(key string) string
	Exists(ctx context.Context, key string) (bool, error)
	KeyFromPublicURL(url string) (string, bool)
}

// Handler serves the HTTP API. Media is nil when no object storage is
// configured; upload endpoints then answer 503.
type Handler struct {
	Accounts   *services.AccountService
	Portfolios *services.PortfolioService
	Posts      PostStore
	Media      MediaStore
	OAuth      *oauth2.Config
	Config     config.Config
	Log        *zap.Logger
}

// currentUser loads the user authenticated by middleware.Auth. It writes
// the error response itself and returns nil when there is none.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) *models.User {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	user, err := h.Accounts.Get(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	if err != nil {
		h.writeError(w, err)
		return nil
	}
	return user
}

// writeError maps domain errors onto responses. Anything unexpected is
// logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, portfolio.ErrInvalidTier):
		status, message = http.StatusBadRequest, "Invalid plan selected."
	case errors.Is(err, portfolio.ErrMissingField):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, repositories.ErrUsernameTaken):
		status, message = http.StatusConflict, "Username is already taken"
	case errors.Is(err, repositories.ErrEmailTaken):
		status, message = http.StatusConflict, "User already exists with this email"
	case errors.Is(err, repositories.ErrDuplicateIdentity):
		status, message = http.StatusConflict, "Username or Email already exists."
	case errors.Is(err, repositories.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	default:
		h.Log.Error("request failed", zap.Error(err))
	}
	utils.JSONError(w, status, message)
}
