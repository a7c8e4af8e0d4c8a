package models

import (
	"time"
)

type Property struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Type         string   `json:"type"`
	Category     string   `json:"category"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	BedRooms     int      `json:"bed_rooms"`
	BathRooms    int      `json:"bath_rooms"`
	LandSize     float64  `json:"land_size"`
	BuildingSize float64  `json:"building_size"`
	Facilities   []string `json:"facilities"`
	AgentID      int      `json:"agent_id"`
	Agent        struct {
		ID     int     `json:"id,omitempty"`
		Name   string  `json:"name,omitempty"`
		Email  string  `json:"email,omitempty"`
		Phone  string  `json:"phone,omitempty"`
		Avatar *string `json:"avatar,omitempty"`
	} `json:"agent"`
	PrimaryImage *string         `json:"primary_image,omitempty"`
	Images       []PropertyImage `json:"images,omitempty"`
	IsFeatured   bool            `json:"is_featured"`
	Status       string          `json:"status"`
	ViewsCount   int             `json:"views_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

type PropertyImage struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	ImageURL   string `json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
}

// PropertyFilter carries the already type-checked listing filters. Numeric
// fields are pointers so "absent" and "zero" stay distinct.
type PropertyFilter struct {
	Type     string
	Category string
	City     string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	BedRooms *int
	Page     int
	Limit    int
}

// PropertyUpdate is the partial-update payload. A nil field is left untouched.
type PropertyUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Type         *string   `json:"type"`
	Category     *string   `json:"category"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	District     *string   `json:"district"`
	BedRooms     *int      `json:"bed_rooms"`
	BathRooms    *int      `json:"bath_rooms"`
	LandSize     *float64  `json:"land_size"`
	BuildingSize *float64  `json:"building_size"`
	Facilities   *[]string `json:"facilities"`
	Status       *string   `json:"status"`
	IsFeatured   *bool     `json:"is_featured"`
}

const (
	PropertyStatusActive   = "active"
	PropertyStatusPending  = "pending"
	PropertyStatusSold     = "sold"
	PropertyStatusArchived = "archived"

	PropertyTypeSale = "sale"
	PropertyTypeRent = "rent"
)
