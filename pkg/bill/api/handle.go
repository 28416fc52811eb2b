package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"
	"github.com/tendant/century-shop/pkg/bill"
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

type Handle struct {
	service *bill.Service
}

func NewHandle(service *bill.Service) Handle {
	return Handle{service: service}
}

// CreateBill handles POST /bill
func (h Handle) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, CreateBillResponse{Sent: false, Message: "Invalid request body"})
		return
	}

	var b bill.Bill
	if err := copier.Copy(&b, &req); err != nil {
		slog.Error("Failed to map bill request", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, CreateBillResponse{Sent: false, Message: "Error creating bill"})
		return
	}

	created, err := h.service.CreateBill(r.Context(), b)
	if err != nil {
		resp := CreateBillResponse{
			Sent:    false,
			Message: apperrors.PublicMessage(err, "Error creating bill"),
		}
		if created != nil {
			resp.BillID = created.ID.String()
			resp.TrackingCode = created.TrackingCode
		}
		render.Status(r, apperrors.MapErrorCodeToHTTPStatus(apperrors.GetCode(err)))
		render.JSON(w, r, resp)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CreateBillResponse{
		Sent:         true,
		BillID:       created.ID.String(),
		TrackingCode: created.TrackingCode,
	})
}

// Routes mounts the bill endpoints on r
func (h Handle) Routes(r chi.Router) {
	r.Post("/", h.CreateBill)
}
