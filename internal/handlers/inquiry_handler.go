package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actorFromContext(r.Context())

	var req models.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PropertyID == 0 {
		WriteError(w, http.StatusBadRequest, "Property id is required")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		WriteError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	inquiry, err := h.Service.CreateInquiry(r.Context(), actorID, req)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}
		serverError(w, "Server error while creating inquiry", err)
		return
	}

	respondCreated(w, inquiry, "Inquiry sent successfully")
}
