package repository

import (
	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Category").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Category").Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List สินค้าทั้งหมด (ใหม่สุดก่อน) กรองตามหมวดหมู่ได้
func (r *ProductRepository) List(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	q := r.DB.Preload("Category").Order("created_at DESC")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// สินค้าแนะนำหน้าแรก
func (r *ProductRepository) ListHighlight(limit int) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Preload("Category").Where("is_highlight = ?", true).
		Order("created_at DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) ListRecommended(limit int) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Preload("Category").Order("created_at DESC").
		Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// สินค้าหมวดเดียวกัน (ไม่รวมตัวเอง) สำหรับหน้า product detail
func (r *ProductRepository) ListRelated(categoryID, excludeID uint, limit int) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Preload("Category").
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SlugTaken ตรวจว่า slug ถูกใช้โดยสินค้าตัวอื่นหรือยัง
func (r *ProductRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
