package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"estateBack/internal/models"
)

// Every endpoint answers with the same envelope.
type envelope struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Printf("write response: %v", err)
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, data interface{}, message string) {
	writeEnvelope(w, http.StatusCreated, envelope{Success: true, Data: data, Message: message})
}

func respondMessage(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusOK, envelope{Success: true, Message: message})
}

func respondList(w http.ResponseWriter, data interface{}, p models.Pagination) {
	writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &p})
}

// WriteError emits a failure envelope. Exported so middleware can share it.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, envelope{Success: false, Message: message})
}

// serverError logs the internal detail and returns only a generic message.
func serverError(w http.ResponseWriter, message string, err error) {
	log.Printf("%s: %v", message, err)
	WriteError(w, http.StatusInternalServerError, message)
}
