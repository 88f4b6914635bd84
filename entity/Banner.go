package entity

import (
	"gorm.io/gorm"
)

type Banner struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"` // ไม่ใส่มาจะ default เป็น "#" ที่ชั้น controller
	ButtonText  string `json:"buttonText"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"` // ลำดับการแสดงผล
}
