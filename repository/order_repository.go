package repository

import (
	"time"

	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create เขียน order พร้อม items ในคราวเดียว (gorm nested create)
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByOrderNumber(orderNumber string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("order_number = ?", orderNumber).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter สำหรับหน้าจัดการออเดอร์หลังบ้าน
type OrderFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time // รวมทั้งวัน (เติม 23:59:59 แล้วจากฝั่ง controller)
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Preload("Items").Order("created_at DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("created_at <= ?", *f.EndDate)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}
