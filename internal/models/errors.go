package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrImageNotFound      = errors.New("property image not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrNotOwner           = errors.New("not authorized for this property")
	ErrNoUpdatableFields  = errors.New("no valid fields to update")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
