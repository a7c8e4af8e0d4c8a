package services

import (
	"context"
	"errors"
	"testing"

	"estateBack/internal/models"
)

// The guards below run before any repository access, so a zero-value service
// is enough to exercise them.

func TestDeleteUserRefusesSelf(t *testing.T) {
	s := &AdminService{}

	err := s.DeleteUser(context.Background(), 5, 5)
	if !errors.Is(err, models.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	s := &AdminService{}

	err := s.UpdateUserRole(context.Background(), 5, "superadmin")
	if !errors.Is(err, models.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUpdateInquiryStatusRejectsUnknownStatus(t *testing.T) {
	s := &AdminService{}

	err := s.UpdateInquiryStatus(context.Background(), 5, "spam")
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
