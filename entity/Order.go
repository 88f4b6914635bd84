package entity

import (
	"gorm.io/gorm"
)

// สถานะคำสั่งซื้อ
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	// สั่งแบบ guest ได้ → nullable
	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`

	// ข้อมูลจัดส่ง
	FirstName  string `gorm:"not null" json:"firstName"`
	LastName   string `gorm:"not null" json:"lastName"`
	Phone      string `gorm:"not null" json:"phone"`
	Email      string `gorm:"not null" json:"email"`
	Address    string `gorm:"not null" json:"address"`
	District   string `gorm:"not null" json:"district"`
	Province   string `gorm:"not null" json:"province"`
	PostalCode string `gorm:"not null" json:"postalCode"`
	Note       string `json:"note,omitempty"`

	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`

	PaymentSlip string `json:"paymentSlip,omitempty"` // URL สลิปโอนเงิน
	Status      string `gorm:"not null;default:pending" json:"status"`

	Items []OrderItem `json:"items"`
}

// ValidOrderStatus ตรวจว่าสถานะอยู่ใน allow-list
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
