package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/services"
	"github.com/TanthaiP001/spprosupply/storage"
	"github.com/TanthaiP001/spprosupply/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const maxSlipSize = 5 * 1024 * 1024 // 5MB

type OrderController struct {
	Svc   *services.OrderService
	Repo  *repository.OrderRepository
	Store storage.BlobStore
	Cfg   *configs.Config
}

func NewOrderController(svc *services.OrderService, repo *repository.OrderRepository, store storage.BlobStore, cfg *configs.Config) *OrderController {
	return &OrderController{Svc: svc, Repo: repo, Store: store, Cfg: cfg}
}

// POST /api/orders (public, multipart form)
// ยอดเงินคิดใหม่จากราคาใน DB เสมอ ช่อง subtotal/total ที่ client ส่งมาไม่ถูกใช้
func (oc *OrderController) Create(c *gin.Context) {
	firstName := c.PostForm("firstName")
	lastName := c.PostForm("lastName")
	phone := c.PostForm("phone")
	email := c.PostForm("email")
	address := c.PostForm("address")
	district := c.PostForm("district")
	province := c.PostForm("province")
	postalCode := c.PostForm("postalCode")
	note := c.PostForm("note")

	if firstName == "" || lastName == "" || phone == "" || email == "" ||
		address == "" || district == "" || province == "" || postalCode == "" {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	itemsJSON := c.PostForm("items")
	if itemsJSON == "" {
		resp.BadRequest(c, "ไม่มีสินค้าในตะกร้า")
		return
	}
	var items []services.OrderItemIn
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		resp.BadRequest(c, "ไม่มีสินค้าในตะกร้า")
		return
	}

	shippingFee, _ := strconv.ParseFloat(c.PostForm("shippingFee"), 64)

	var userID *uint
	if v := c.PostForm("userId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(id)
			userID = &u
		}
	}

	orderNumber := utils.GenerateOrderNumber()

	// สลิปโอนเงิน (optional)
	slipURL := ""
	if fh, err := c.FormFile("paymentSlip"); err == nil && fh != nil {
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			resp.BadRequest(c, "กรุณาอัปโหลดไฟล์รูปภาพเท่านั้น")
			return
		}
		if fh.Size > maxSlipSize {
			resp.BadRequest(c, "ขนาดไฟล์ต้องไม่เกิน 5MB")
			return
		}

		f, err := fh.Open()
		if err != nil {
			resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปโหลดไฟล์", err)
			return
		}
		defer f.Close()

		ext := filepath.Ext(fh.Filename)
		key := fmt.Sprintf("orders/%d-%s%s", time.Now().UnixMilli(), orderNumber, ext)
		slipURL, err = oc.Store.Put(c.Request.Context(), key, contentType, f)
		if err != nil {
			resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปโหลดไฟล์", err)
			return
		}
	}

	order, err := oc.Svc.Create(services.CreateOrderRequest{
		UserID:         userID,
		FirstName:      firstName,
		LastName:       lastName,
		Phone:          phone,
		Email:          email,
		Address:        address,
		District:       district,
		Province:       province,
		PostalCode:     postalCode,
		Note:           note,
		ShippingFee:    shippingFee,
		PaymentSlipURL: slipURL,
		Items:          items,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, "ไม่มีสินค้าในตะกร้า")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.BadRequest(c, "ไม่พบสินค้า")
		default:
			resp.ServerError(c, "เกิดข้อผิดพลาดในการสั่งซื้อ", err)
		}
		return
	}

	// อีเมลยืนยัน best-effort ไม่บล็อกการตอบกลับ
	go func(o *entity.Order) {
		mailCfg := utils.MailConfig{
			SMTPAddress: oc.Cfg.SMTPAddress,
			From:        oc.Cfg.FromEmail,
			Password:    oc.Cfg.FromEmailPass,
			SMTPHost:    oc.Cfg.FromEmailSMTP,
		}
		data := utils.OrderMailData{
			Name:        o.FirstName + " " + o.LastName,
			OrderNumber: o.OrderNumber,
			Total:       o.Total,
			TrackURL:    oc.Cfg.SiteURL + "/orders/track?orderNumber=" + o.OrderNumber,
		}
		if err := utils.SendOrderConfirmation(mailCfg, o.Email, data); err != nil {
			log.Println("send order confirmation failed:", err)
		}
	}(order)

	resp.Created(c, gin.H{
		"message": "สั่งซื้อสำเร็จ",
		"order":   gin.H{"id": order.ID, "orderNumber": order.OrderNumber},
	})
}

// GET /api/orders/track?orderNumber= (public)
func (oc *OrderController) Track(c *gin.Context) {
	orderNumber := c.Query("orderNumber")
	if orderNumber == "" {
		resp.BadRequest(c, "กรุณาระบุหมายเลขคำสั่งซื้อ")
		return
	}

	order, err := oc.Svc.Track(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบคำสั่งซื้อ")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการค้นหา", err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// ===== Admin =====

// GET /api/orders?status=&startDate=&endDate= (admin)
func (oc *OrderController) AdminList(c *gin.Context) {
	filter := repository.OrderFilter{Status: c.Query("status")}

	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// รวมทั้งวันสุดท้าย
			end := t.Add(24*time.Hour - time.Millisecond)
			filter.EndDate = &end
		}
	}

	orders, err := oc.Repo.List(filter)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id (admin)
func (oc *OrderController) AdminDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบคำสั่งซื้อ")
		return
	}

	order, err := oc.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบคำสั่งซื้อ")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type UpdateOrderStatusIn struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/orders/:id (admin) เปลี่ยนสถานะตาม allow-list
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบคำสั่งซื้อ")
		return
	}

	var req UpdateOrderStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "สถานะไม่ถูกต้อง")
		return
	}

	order, err := oc.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "สถานะไม่ถูกต้อง")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "ไม่พบคำสั่งซื้อ")
		default:
			resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปเดต", err)
		}
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /api/admin/orders/export ดาวน์โหลดออเดอร์เป็น Excel
func (oc *OrderController) Export(c *gin.Context) {
	orders, err := oc.Repo.List(repository.OrderFilter{Status: c.Query("status")})
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}

	xl := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"หมายเลขคำสั่งซื้อ", "ชื่อผู้สั่ง", "เบอร์โทร", "อีเมล", "ยอดสินค้า", "ค่าจัดส่ง", "ยอดรวม", "สถานะ", "วันที่สั่งซื้อ"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		values := []any{
			o.OrderNumber,
			o.FirstName + " " + o.LastName,
			o.Phone,
			o.Email,
			o.Subtotal,
			o.ShippingFee,
			o.Total,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xl.SetCellValue(sheet, cell, v)
		}
	}

	filename := "orders-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		log.Println("export orders failed:", err)
	}
}
