package services

import (
	"testing"

	"estateBack/internal/models"
)

func TestCanMutateProperty(t *testing.T) {
	tests := []struct {
		name    string
		actorID int
		role    string
		ownerID int
		want    bool
	}{
		{"owner agent", 5, models.RoleAgent, 5, true},
		{"other agent", 5, models.RoleAgent, 9, false},
		{"admin over foreign property", 1, models.RoleAdmin, 9, true},
		{"plain user over own id match", 5, models.RoleUser, 5, true},
		{"plain user over foreign property", 5, models.RoleUser, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canMutateProperty(tt.actorID, tt.role, tt.ownerID)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
