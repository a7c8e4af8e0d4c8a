package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"estateBack/internal/models"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "Property not found")

	if rec.Code != 404 {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Success {
		t.Fatal("expected success false")
	}
	if body.Message != "Property not found" {
		t.Fatalf("expected message, got %q", body.Message)
	}
}

func TestRespondList(t *testing.T) {
	rec := httptest.NewRecorder()
	respondList(rec, []string{"a", "b"}, models.NewPagination(2, 10, 31))

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var body struct {
		Success    bool              `json:"success"`
		Data       []string          `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success true")
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(body.Data))
	}
	if body.Pagination.Pages != 4 {
		t.Fatalf("expected 4 pages, got %d", body.Pagination.Pages)
	}
}

func TestRespondCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	respondCreated(rec, map[string]int{"id": 7}, "Property created successfully")

	if rec.Code != 201 {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success || body.Message != "Property created successfully" {
		t.Fatalf("unexpected body %+v", body)
	}
}
