package repository

import (
	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// CategoryWithCount แนบจำนวนสินค้าในหมวดไปด้วย สำหรับหลังบ้าน
type CategoryWithCount struct {
	entity.Category
	ProductCount int64 `json:"productCount"`
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.DB.Order("created_at DESC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryRepository) ListWithCounts() ([]CategoryWithCount, error) {
	cats, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]CategoryWithCount, 0, len(cats))
	for _, cat := range cats {
		n, err := r.CountProducts(cat.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryWithCount{Category: cat, ProductCount: n})
	}
	return out, nil
}

func (r *CategoryRepository) CountProducts(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
