package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload แค่ตอนต้องการ order detail

	ProductID uint `json:"productId"`

	// snapshot ณ เวลาสั่งซื้อ ราคาสินค้าเปลี่ยนทีหลังไม่กระทบออเดอร์เดิม
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
