package handlers

import (
	"testing"

	"estateBack/internal/models"
)

func TestValidateProperty(t *testing.T) {
	valid := models.Property{
		Title:    "Two bedroom apartment",
		Price:    150000,
		Type:     models.PropertyTypeSale,
		Category: "apartment",
	}

	if msg := validateProperty(valid); msg != "" {
		t.Fatalf("expected valid property, got %q", msg)
	}

	tests := []struct {
		name   string
		mutate func(p *models.Property)
	}{
		{"missing title", func(p *models.Property) { p.Title = "" }},
		{"zero price", func(p *models.Property) { p.Price = 0 }},
		{"negative price", func(p *models.Property) { p.Price = -1 }},
		{"unknown type", func(p *models.Property) { p.Type = "lease" }},
		{"unknown category", func(p *models.Property) { p.Category = "castle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if msg := validateProperty(p); msg == "" {
				t.Fatal("expected validation message")
			}
		})
	}
}
