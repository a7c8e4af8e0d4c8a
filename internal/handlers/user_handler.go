package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if len(req.Password) < 6 {
		WriteError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			WriteError(w, http.StatusConflict, "Email already registered")
			return
		}
		serverError(w, "Server error while registering user", err)
		return
	}

	respondCreated(w, user, "User registered successfully")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, tokens, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		serverError(w, "Server error while logging in", err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actorFromContext(r.Context())

	user, err := h.Service.GetUserByID(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		serverError(w, "Server error while fetching user", err)
		return
	}

	respondData(w, http.StatusOK, user)
}

func (h *UserHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Service.ListAgents(r.Context())
	if err != nil {
		serverError(w, "Server error while fetching agents", err)
		return
	}

	respondData(w, http.StatusOK, agents)
}

func (h *UserHandler) SaveFCMToken(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actorFromContext(r.Context())

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		WriteError(w, http.StatusBadRequest, "Token is required")
		return
	}

	if err := h.Service.SaveFCMToken(r.Context(), actorID, req.Token); err != nil {
		serverError(w, "Server error while saving token", err)
		return
	}

	respondMessage(w, "Token saved successfully")
}
