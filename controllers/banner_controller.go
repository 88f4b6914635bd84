package controllers

import (
	"errors"
	"strconv"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BannerController struct {
	Repo *repository.BannerRepository
}

func NewBannerController(repo *repository.BannerRepository) *BannerController {
	return &BannerController{Repo: repo}
}

// GET /api/banners หน้าแรกใช้ banner ตัวแรกที่เปิดใช้งาน
func (bc *BannerController) ListActive(c *gin.Context) {
	banners, err := bc.Repo.ListActive(1)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"banners": banners})
}

// GET /api/admin/banners
func (bc *BannerController) AdminList(c *gin.Context) {
	banners, err := bc.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"banners": banners})
}

type CreateBannerIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Link        string `json:"link"`
	ButtonText  string `json:"buttonText"`
	IsActive    *bool  `json:"isActive"`
	Order       *int   `json:"order"`
}

// POST /api/admin/banners
func (bc *BannerController) Create(c *gin.Context) {
	var req CreateBannerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	banner := entity.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        "#",
		ButtonText:  "ดูเพิ่มเติม",
		IsActive:    true,
	}
	if req.Link != "" {
		banner.Link = req.Link
	}
	if req.ButtonText != "" {
		banner.ButtonText = req.ButtonText
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}

	if err := bc.Repo.Create(&banner); err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการสร้าง Banner", err)
		return
	}
	resp.Created(c, gin.H{"message": "สร้าง Banner สำเร็จ", "banner": banner})
}

type UpdateBannerIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	ButtonText  *string `json:"buttonText"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

// PUT /api/admin/banners/:id
func (bc *BannerController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบ Banner")
		return
	}

	if _, err := bc.Repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบ Banner")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}

	var req UpdateBannerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.ButtonText != nil {
		updates["button_text"] = *req.ButtonText
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}

	if len(updates) > 0 {
		if err := bc.Repo.Update(uint(id), updates); err != nil {
			resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปเดต Banner", err)
			return
		}
	}

	banner, err := bc.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"message": "อัปเดต Banner สำเร็จ", "banner": banner})
}

// DELETE /api/admin/banners/:id
func (bc *BannerController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบ Banner")
		return
	}

	if _, err := bc.Repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบ Banner")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}

	if err := bc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการลบ Banner", err)
		return
	}
	resp.OK(c, gin.H{"message": "ลบ Banner สำเร็จ"})
}
