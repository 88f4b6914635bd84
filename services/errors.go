package services

import "errors"

// sentinel errors ให้ controller แปลงเป็น HTTP status + ข้อความภาษาไทย
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrCategoryNotEmpty   = errors.New("category has products")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrEmptyCart          = errors.New("no items in cart")
	ErrUserNotFound       = errors.New("user not found")
)
