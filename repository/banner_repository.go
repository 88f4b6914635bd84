package repository

import (
	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/gorm"
)

type BannerRepository struct {
	DB *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{DB: db}
}

func (r *BannerRepository) Create(b *entity.Banner) error {
	return r.DB.Create(b).Error
}

func (r *BannerRepository) FindByID(id uint) (*entity.Banner, error) {
	var b entity.Banner
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ListAll สำหรับหลังบ้าน เรียงตามลำดับการแสดงผล
func (r *BannerRepository) ListAll() ([]entity.Banner, error) {
	var banners []entity.Banner
	if err := r.DB.Order("sort_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ListActive คืน banner ที่เปิดใช้งาน หน้าแรกใช้แค่ตัวแรก
func (r *BannerRepository) ListActive(limit int) ([]entity.Banner, error) {
	var banners []entity.Banner
	if err := r.DB.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Limit(limit).Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *BannerRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Banner{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BannerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Banner{}, id).Error
}
