package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.DashboardStats(r.Context())
	if err != nil {
		serverError(w, "Server error while fetching dashboard", err)
		return
	}

	respondData(w, http.StatusOK, stats)
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r.URL.Query())

	users, pagination, err := h.Service.ListUsers(r.Context(), page, limit)
	if err != nil {
		serverError(w, "Server error while fetching users", err)
		return
	}

	respondList(w, users, pagination)
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Service.UpdateUserRole(r.Context(), id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRole):
			WriteError(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, models.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, "User not found")
		default:
			serverError(w, "Server error while updating user role", err)
		}
		return
	}

	respondMessage(w, "User role updated successfully")
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}
	actorID, _ := actorFromContext(r.Context())

	err := h.Service.DeleteUser(r.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSelfDelete):
			WriteError(w, http.StatusBadRequest, "Cannot delete your own account")
		case errors.Is(err, models.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, "User not found")
		default:
			serverError(w, "Server error while deleting user", err)
		}
		return
	}

	respondMessage(w, "User deleted successfully")
}

func (h *AdminHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r.URL.Query())

	inquiries, pagination, err := h.Service.ListInquiries(r.Context(), page, limit)
	if err != nil {
		serverError(w, "Server error while fetching inquiries", err)
		return
	}

	respondList(w, inquiries, pagination)
}

func (h *AdminHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Service.UpdateInquiryStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			WriteError(w, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, models.ErrInquiryNotFound):
			WriteError(w, http.StatusNotFound, "Inquiry not found")
		default:
			serverError(w, "Server error while updating inquiry", err)
		}
		return
	}

	respondMessage(w, "Inquiry status updated successfully")
}
