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

type ProductController struct {
	Svc  *services.ProductService
	Repo *repository.ProductRepository
}

func NewProductController(svc *services.ProductService, repo *repository.ProductRepository) *ProductController {
	return &ProductController{Svc: svc, Repo: repo}
}

// GET /api/products?categoryId= (public)
func (pc *ProductController) List(c *gin.Context) {
	var categoryID uint
	if v := c.Query("categoryId"); v != "" && v != "all" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "หมวดหมู่ไม่ถูกต้อง")
			return
		}
		categoryID = uint(id)
	}

	products, err := pc.Repo.List(categoryID)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	c.Header("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	resp.OK(c, gin.H{"products": products})
}

// GET /api/products/highlight สินค้าแนะนำหน้าแรก
func (pc *ProductController) ListHighlight(c *gin.Context) {
	products, err := pc.Repo.ListHighlight(9)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	c.Header("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	resp.OK(c, gin.H{"products": products})
}

// GET /api/products/recommendations
func (pc *ProductController) ListRecommendations(c *gin.Context) {
	products, err := pc.Repo.ListRecommended(20)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /api/products/:slug (public) พร้อมสินค้าหมวดเดียวกันอีก 4 ตัว
func (pc *ProductController) DetailBySlug(c *gin.Context) {
	product, err := pc.Repo.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบสินค้า")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}

	related, err := pc.Repo.ListRelated(product.CategoryID, product.ID, 4)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"product": product, "relatedProducts": related})
}

// ===== Admin =====

type CreateProductIn struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Tag         string  `json:"tag"`
	IsHighlight bool    `json:"isHighlight"`
	Description string  `json:"description"`
}

// GET /api/admin/products
func (pc *ProductController) AdminList(c *gin.Context) {
	products, err := pc.Repo.List(0)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการดึงข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// POST /api/admin/products
func (pc *ProductController) Create(c *gin.Context) {
	var req CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	product, err := pc.Svc.Create(services.CreateProductRequest{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Tag:         req.Tag,
		IsHighlight: req.IsHighlight,
		Description: req.Description,
	})
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการสร้างสินค้า", err)
		return
	}
	resp.Created(c, gin.H{"message": "สร้างสินค้าสำเร็จ", "product": product})
}

// PUT /api/admin/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบสินค้า")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	product, err := pc.Svc.Update(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบสินค้า")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปเดตสินค้า", err)
		return
	}
	resp.OK(c, gin.H{"message": "อัปเดตสินค้าสำเร็จ", "product": product})
}

// DELETE /api/admin/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "ไม่พบสินค้า")
		return
	}

	if err := pc.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ไม่พบสินค้า")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการลบสินค้า", err)
		return
	}
	resp.OK(c, gin.H{"message": "ลบสินค้าสำเร็จ"})
}
