package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activities/models"
	"mergington/internal/platform/middleware"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/httputil"
)

// Service defines the interface for registry operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	List(ctx context.Context) []*models.Activity
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/activities", h.HandleListActivities)
	r.Post("/activities/{name}/signup", h.HandleSignup)
	r.Delete("/activities/{name}/unregister", h.HandleUnregister)
}

// HandleListActivities returns every activity keyed by name, in registry
// insertion order.
func (h *Handler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.List(r.Context())
	httputil.WriteJSON(w, http.StatusOK, ActivityMap(activities))
}

// HandleSignup enrolls the email from the query string in the activity
// named by the path segment.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	name := activityName(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email query parameter is required"))
		return
	}

	message, err := h.service.Signup(ctx, name, email)
	if err != nil {
		h.logger.ErrorContext(ctx, "signup failed", "error", err, "request_id", requestID, "activity", name)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// HandleUnregister removes the email from the named activity's roster.
func (h *Handler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	name := activityName(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email query parameter is required"))
		return
	}

	message, err := h.service.Unregister(ctx, name, email)
	if err != nil {
		h.logger.ErrorContext(ctx, "unregister failed", "error", err, "request_id", requestID, "activity", name)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// activityName decodes the {name} path segment before registry lookup.
// chi hands back the raw segment when the request URL carried escapes, and
// the wire contract admits both %20 and + as space encodings.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.ReplaceAll(name, "+", " ")
}
