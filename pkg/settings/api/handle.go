package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	apperrors "github.com/tendant/century-shop/pkg/errors"
	"github.com/tendant/century-shop/pkg/settings"
)

type Handle struct {
	service *settings.Service
}

func NewHandle(service *settings.Service) Handle {
	return Handle{service: service}
}

// GetConfig handles GET /config
func (h Handle) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		render.Status(r, apperrors.MapErrorCodeToHTTPStatus(apperrors.GetCode(err)))
		render.JSON(w, r, MessageResponse{Message: apperrors.PublicMessage(err, "Error fetching system configuration")})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, cfg)
}

// UpdateConfig handles PUT /config
func (h Handle) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "Invalid request body"})
		return
	}

	if req.ConfigID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "Config ID is required to update."})
		return
	}
	id, err := uuid.Parse(req.ConfigID)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "Invalid config ID"})
		return
	}

	var cfg settings.SystemConfig
	if err := copier.Copy(&cfg, &req); err != nil {
		slog.Error("Failed to map update request", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "Error updating configuration"})
		return
	}
	cfg.ID = id

	if err := h.service.UpdateConfig(r.Context(), cfg); err != nil {
		status := apperrors.MapErrorCodeToHTTPStatus(apperrors.GetCode(err))
		message := "Error updating configuration"
		if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
			message = "Configuration not found or no changes made"
		}
		render.Status(r, status)
		render.JSON(w, r, MessageResponse{Message: message})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, MessageResponse{Message: "Configuration updated successfully"})
}

// Routes mounts the configuration endpoints on r
func (h Handle) Routes(r chi.Router) {
	r.Get("/", h.GetConfig)
	r.Put("/", h.UpdateConfig)
}
