package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		pages int
	}{
		{"exact division", 1, 10, 100, 10},
		{"partial last page", 1, 10, 101, 11},
		{"fewer rows than limit", 1, 10, 3, 1},
		{"no rows", 1, 10, 0, 0},
		{"limit one", 2, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.Pages != tt.pages {
				t.Fatalf("expected %d pages, got %d", tt.pages, p.Pages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Fatalf("pagination fields not carried through: %+v", p)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleAgent, RoleUser} {
		if !ValidRole(role) {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin"} {
		if ValidRole(role) {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}

func TestValidInquiryStatus(t *testing.T) {
	for _, status := range []string{InquiryStatusNew, InquiryStatusRead, InquiryStatusClosed} {
		if !ValidInquiryStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ValidInquiryStatus("archived") {
		t.Fatal("expected archived to be invalid")
	}
}
