package services

import (
	"errors"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create รับ slug มาตรงๆ ได้ (หลังบ้านกรอกเอง) หรือปล่อยว่างให้ gen จากชื่อ
func (s *CategoryService) Create(name, slug string) (*entity.Category, error) {
	if slug != "" {
		taken, err := s.repo.SlugTaken(slug, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	} else {
		var err error
		slug, err = resolveUniqueSlug(name, 0, s.repo.SlugTaken)
		if err != nil {
			return nil, err
		}
	}

	cat := &entity.Category{Name: name, Slug: slug}
	if err := s.repo.Create(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return cat, nil
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func (s *CategoryService) Update(id uint, req UpdateCategoryRequest) (*entity.Category, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Slug != nil && *req.Slug != "" {
		taken, err := s.repo.SlugTaken(*req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		updates["slug"] = *req.Slug
	}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrSlugTaken
			}
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// Delete ห้ามลบหมวดที่ยังมีสินค้า (บังคับที่ application ไม่พึ่ง FK อย่างเดียว)
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.repo.Delete(id)
}
