package controllers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/services"
	"github.com/TanthaiP001/spprosupply/storage"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

type AdminController struct {
	UserRepo *repository.UserRepository
	AuthSvc  *services.AuthService
	StatsSvc *services.StatsService
	Store    storage.BlobStore
	Cfg      *configs.Config
}

func NewAdminController(userRepo *repository.UserRepository, authSvc *services.AuthService, statsSvc *services.StatsService, store storage.BlobStore, cfg *configs.Config) *AdminController {
	return &AdminController{UserRepo: userRepo, AuthSvc: authSvc, StatsSvc: statsSvc, Store: store, Cfg: cfg}
}

// GET /api/users รายชื่อสมาชิกทั้งหมดสำหรับหลังบ้าน
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.UserRepo.ListAll()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	resp.OK(c, gin.H{"users": out, "count": len(out)})
}

// GET /api/admin/check-role
// ถามด้วย X-User-Id header แล้วตอบข้อมูล user พร้อม flag isAdmin
func (ac *AdminController) CheckRole(c *gin.Context) {
	idStr := c.GetHeader("X-User-Id")
	if idStr == "" {
		resp.Unauthorized(c, "ไม่พบข้อมูลผู้ใช้")
		return
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		resp.Unauthorized(c, "ไม่พบข้อมูลผู้ใช้")
		return
	}

	user, err := ac.UserRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "ไม่พบข้อมูลผู้ใช้")
		return
	}

	resp.OK(c, gin.H{"user": gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"name":    user.FirstName + " " + user.LastName,
		"role":    user.Role,
		"isAdmin": user.Role == "admin",
	}})
}

// POST /api/admin/create-admin
// ล็อกด้วย ADMIN_CREATE_SECRET ใน Authorization header ไม่ใช่ session ปกติ
func (ac *AdminController) CreateAdmin(c *gin.Context) {
	if ac.Cfg.AdminCreateSecret == "" {
		resp.ServerError(c, "Server configuration error", nil)
		return
	}
	if c.GetHeader("Authorization") != "Bearer "+ac.Cfg.AdminCreateSecret {
		resp.Unauthorized(c, "Unauthorized")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	user, created, err := ac.AuthSvc.CreateAdmin(services.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการสร้างผู้ดูแลระบบ", err)
		return
	}

	if created {
		resp.Created(c, gin.H{"message": "Admin user created successfully", "user": userJSON(user)})
		return
	}
	resp.OK(c, gin.H{"message": "Admin user updated successfully", "user": userJSON(user)})
}

// GET /api/admin/statistics
func (ac *AdminController) Statistics(c *gin.Context) {
	stats, err := ac.StatsSvc.Collect()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"statistics": stats})
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// POST /api/admin/upload?type=products|banners
func (ac *AdminController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "ไม่พบไฟล์")
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		resp.BadRequest(c, "กรุณาอัปโหลดไฟล์รูปภาพเท่านั้น")
		return
	}
	if fh.Size > maxUploadSize {
		resp.BadRequest(c, "ขนาดไฟล์ต้องไม่เกิน 5MB")
		return
	}

	uploadType := c.Query("type")
	if uploadType != "products" && uploadType != "banners" {
		uploadType = "products"
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปโหลดไฟล์", err)
		return
	}
	defer f.Close()

	name := unsafeFilename.ReplaceAllString(fh.Filename, "_")
	key := fmt.Sprintf("%s/%d-%s", uploadType, time.Now().UnixMilli(), name)

	url, err := ac.Store.Put(c.Request.Context(), key, contentType, f)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปโหลดไฟล์", err)
		return
	}

	resp.OK(c, gin.H{"message": "อัปโหลดสำเร็จ", "url": url, "filename": key})
}
