package main

import (
	"testing"

	"estateBack/internal/models"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name     string
		required string
		actual   string
		want     bool
	}{
		{"admin route admin", models.RoleAdmin, models.RoleAdmin, true},
		{"admin route agent", models.RoleAdmin, models.RoleAgent, false},
		{"admin route user", models.RoleAdmin, models.RoleUser, false},
		{"agent route agent", models.RoleAgent, models.RoleAgent, true},
		{"agent route admin", models.RoleAgent, models.RoleAdmin, true},
		{"agent route user", models.RoleAgent, models.RoleUser, false},
		{"user route user", models.RoleUser, models.RoleUser, true},
		{"user route agent", models.RoleUser, models.RoleAgent, true},
		{"user route admin", models.RoleUser, models.RoleAdmin, true},
		{"user route unknown role", models.RoleUser, "ghost", false},
		{"user route empty role", models.RoleUser, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roleAllowed(tt.required, tt.actual)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
