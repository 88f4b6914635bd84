package controllers

import (
	"errors"
	"strconv"

	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Svc  *services.CategoryService
	Repo *repository.CategoryRepository
}

func NewCategoryController(svc *services.CategoryService, repo *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Svc: svc, Repo: repo}
}

// GET /api/categories (public)
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.Repo.List()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

// GET /api/admin/categories แนบจำนวนสินค้าในแต่ละหมวด
func (cc *CategoryController) AdminList(c *gin.Context) {
	categories, err := cc.Repo.ListWithCounts()
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

type CreateCategoryIn struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// POST /api/admin/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	category, err := cc.Svc.Create(req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			resp.BadRequest(c, "Slug นี้ถูกใช้งานแล้ว")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการสร้างหมวดหมู่", err)
		return
	}
	resp.Created(c, gin.H{"message": "สร้างหมวดหมู่สำเร็จ", "category": category})
}

// PUT /api/admin/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบหมวดหมู่")
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	category, err := cc.Svc.Update(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken):
			resp.BadRequest(c, "Slug นี้ถูกใช้งานแล้ว")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "ไม่พบหมวดหมู่")
		default:
			resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปเดตหมวดหมู่", err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "อัปเดตหมวดหมู่สำเร็จ", "category": category})
}

// DELETE /api/admin/categories/:id ลบได้เฉพาะหมวดที่ว่าง
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบหมวดหมู่")
		return
	}

	if err := cc.Svc.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotEmpty):
			resp.BadRequest(c, "ไม่สามารถลบหมวดหมู่ที่มีสินค้าอยู่ได้")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "ไม่พบหมวดหมู่")
		default:
			resp.ServerError(c, "เกิดข้อผิดพลาดในการลบหมวดหมู่", err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "ลบหมวดหมู่สำเร็จ"})
}
