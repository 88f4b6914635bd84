package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Tag         string  `json:"tag,omitempty"`
	IsHighlight bool    `gorm:"default:false" json:"isHighlight"`
	Description string  `json:"description,omitempty"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
}
