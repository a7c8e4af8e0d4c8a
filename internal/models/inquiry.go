package models

import (
	"time"
)

type Inquiry struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	UserID     int       `json:"user_id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined display fields, filled by admin listings only.
	PropertyTitle string `json:"property_title,omitempty"`
	UserName      string `json:"user_name,omitempty"`
}

type CreateInquiryRequest struct {
	PropertyID int    `json:"property_id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

const (
	InquiryStatusNew    = "new"
	InquiryStatusRead   = "read"
	InquiryStatusClosed = "closed"
)

// ValidInquiryStatus reports whether status is a known inquiry status.
func ValidInquiryStatus(status string) bool {
	return status == InquiryStatusNew || status == InquiryStatusRead || status == InquiryStatusClosed
}
