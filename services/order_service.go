package services

import (
	"errors"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/utils"
)

type OrderService struct {
	repo        *repository.OrderRepository
	productRepo *repository.ProductRepository
}

func NewOrderService(repo *repository.OrderRepository, productRepo *repository.ProductRepository) *OrderService {
	return &OrderService{repo: repo, productRepo: productRepo}
}

type OrderItemIn struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID     *uint
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	Address    string
	District   string
	Province   string
	PostalCode string
	Note       string

	ShippingFee    float64
	PaymentSlipURL string
	Items          []OrderItemIn
}

// Create คิดยอดจากราคาสินค้าใน DB ไม่เชื่อตัวเลขจาก client
// พร้อม snapshot ชื่อ/รูป/ราคาสินค้าเก็บใน order item
func (s *OrderService) Create(req CreateOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := 0.0
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, errors.New("invalid quantity")
		}
		p, err := s.productRepo.FindByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		subtotal += p.Price * float64(it.Quantity)
		items = append(items, entity.OrderItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.Image,
			Price:        p.Price,
			Quantity:     it.Quantity,
		})
	}

	order := &entity.Order{
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      req.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		District:    req.District,
		Province:    req.Province,
		PostalCode:  req.PostalCode,
		Note:        req.Note,
		Subtotal:    subtotal,
		ShippingFee: req.ShippingFee,
		Total:       subtotal + req.ShippingFee,
		PaymentSlip: req.PaymentSlipURL,
		Status:      entity.OrderStatusPending,
		Items:       items,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus เปลี่ยนสถานะตาม allow-list (admin เท่านั้น)
func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

// Track ค้นหาด้วยหมายเลขคำสั่งซื้อสำหรับลูกค้า
func (s *OrderService) Track(orderNumber string) (*entity.Order, error) {
	return s.repo.FindByOrderNumber(orderNumber)
}
