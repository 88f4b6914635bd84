package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/repository"
)

func orderTestFixtures(t *testing.T) (*OrderService, *entity.Product, *entity.Product) {
	t.Helper()
	db := testDB(t)

	cat := entity.Category{Name: "Tools", Slug: "tools"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	drill := entity.Product{Name: "Impact Drill", Slug: "impact-drill", Price: 2590, Image: "/uploads/products/drill.jpg", CategoryID: cat.ID}
	saw := entity.Product{Name: "Circular Saw", Slug: "circular-saw", Price: 3490, CategoryID: cat.ID}
	if err := db.Create(&drill).Error; err != nil {
		t.Fatalf("seed drill: %v", err)
	}
	if err := db.Create(&saw).Error; err != nil {
		t.Fatalf("seed saw: %v", err)
	}

	svc := NewOrderService(repository.NewOrderRepository(db), repository.NewProductRepository(db))
	return svc, &drill, &saw
}

func baseOrderRequest(items ...OrderItemIn) CreateOrderRequest {
	return CreateOrderRequest{
		FirstName:   "สมชาย",
		LastName:    "ใจดี",
		Phone:       "0812345678",
		Email:       "somchai@example.com",
		Address:     "99/1 หมู่ 4",
		District:    "เมือง",
		Province:    "เชียงใหม่",
		PostalCode:  "50000",
		ShippingFee: 50,
		Items:       items,
	}
}

func TestOrderCreateComputesTotals(t *testing.T) {
	svc, drill, saw := orderTestFixtures(t)

	order, err := svc.Create(baseOrderRequest(
		OrderItemIn{ProductID: drill.ID, Quantity: 2},
		OrderItemIn{ProductID: saw.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantSubtotal := 2590*2 + 3490.0
	if order.Subtotal != wantSubtotal {
		t.Errorf("subtotal = %v, want %v", order.Subtotal, wantSubtotal)
	}
	if order.Total != wantSubtotal+50 {
		t.Errorf("total = %v, want %v", order.Total, wantSubtotal+50)
	}
	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Errorf("order number %q missing ORD- prefix", order.OrderNumber)
	}

	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	// snapshot ชื่อ/รูป/ราคา ณ เวลาสั่ง
	if order.Items[0].ProductName != drill.Name || order.Items[0].Price != drill.Price || order.Items[0].ProductImage != drill.Image {
		t.Errorf("item snapshot mismatch: %+v", order.Items[0])
	}
}

func TestOrderCreateEmptyCart(t *testing.T) {
	svc, _, _ := orderTestFixtures(t)

	if _, err := svc.Create(baseOrderRequest()); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	svc, _, _ := orderTestFixtures(t)

	if _, err := svc.Create(baseOrderRequest(OrderItemIn{ProductID: 9999, Quantity: 1})); err == nil {
		t.Error("expected error for unknown product")
	}
}

func TestOrderCreateInvalidQuantity(t *testing.T) {
	svc, drill, _ := orderTestFixtures(t)

	if _, err := svc.Create(baseOrderRequest(OrderItemIn{ProductID: drill.ID, Quantity: 0})); err == nil {
		t.Error("expected error for zero quantity")
	}
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	svc, drill, _ := orderTestFixtures(t)

	order, err := svc.Create(baseOrderRequest(OrderItemIn{ProductID: drill.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// ขึ้นราคาสินค้าแล้ว ออเดอร์เดิมต้องไม่เปลี่ยน
	if err := svc.repo.DB.Model(&entity.Product{}).Where("id = ?", drill.ID).Update("price", 9999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	got, err := svc.Track(order.OrderNumber)
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if got.Items[0].Price != 2590 {
		t.Errorf("snapshot price = %v, want 2590", got.Items[0].Price)
	}
	if got.Total != 2590+50 {
		t.Errorf("total = %v, want %v", got.Total, 2590+50.0)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	svc, drill, _ := orderTestFixtures(t)

	order, err := svc.Create(baseOrderRequest(OrderItemIn{ProductID: drill.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusCompleted,
	} {
		got, err := svc.UpdateStatus(order.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		if got.Status != status {
			t.Errorf("status = %q, want %q", got.Status, status)
		}
	}

	if _, err := svc.UpdateStatus(order.ID, "verified"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderTrackNotFound(t *testing.T) {
	svc, _, _ := orderTestFixtures(t)

	if _, err := svc.Track("ORD-0-XXXXXX"); err == nil {
		t.Error("expected error tracking unknown order")
	}
}
