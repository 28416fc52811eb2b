package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/century-shop/pkg/emailverification"
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

// Handler exposes the email verification flow over HTTP
type Handler struct {
	service *emailverification.EmailVerificationService
}

// NewHandler creates a new email verification API handler
func NewHandler(service *emailverification.EmailVerificationService) *Handler {
	return &Handler{
		service: service,
	}
}

// SendLink handles POST /verify
func (h *Handler) SendLink(w http.ResponseWriter, r *http.Request) {
	var req SendLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, SendLinkResponse{Sent: false, Message: "Invalid request body"})
		return
	}

	if req.Email == "" || req.Captcha == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, SendLinkResponse{Sent: false, Message: "Email and captcha are required."})
		return
	}

	if err := h.service.IssueVerification(r.Context(), req.Email, req.Captcha); err != nil {
		render.Status(r, apperrors.MapErrorCodeToHTTPStatus(apperrors.GetCode(err)))
		render.JSON(w, r, SendLinkResponse{
			Sent:    false,
			Message: apperrors.PublicMessage(err, "Failed to send verification email"),
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, SendLinkResponse{Sent: true, Message: "Verification email sent successfully."})
}

// VerifyToken handles GET /verify?token=
func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, VerifyTokenResponse{Valid: false, Message: "Token is missing"})
		return
	}

	email, err := h.service.ValidateToken(r.Context(), token)
	if err != nil {
		render.Status(r, apperrors.MapErrorCodeToHTTPStatus(apperrors.GetCode(err)))
		render.JSON(w, r, VerifyTokenResponse{
			Valid:   false,
			Message: apperrors.PublicMessage(err, "Error verifying token"),
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, VerifyTokenResponse{Valid: true, Email: email})
}

// Routes mounts both endpoints on r
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.SendLink)
	r.Get("/", h.VerifyToken)
}
