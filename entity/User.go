package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // ปลอดภัย
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	// ที่อยู่จัดส่ง (optional)
	Address    string `json:"address"`
	District   string `json:"district"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`

	Role string `gorm:"not null;default:user" json:"role"` // "user" | "admin"

	// Relations: preload เฉพาะตอนจำเป็น
	Orders []Order `json:"-"`
}
