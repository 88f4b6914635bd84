package services

import (
	"errors"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

type CreateProductRequest struct {
	Name        string
	Price       float64
	Image       string
	CategoryID  uint
	Rating      float64
	Reviews     int
	Tag         string
	IsHighlight bool
	Description string
}

// Create ตั้ง slug จากชื่อสินค้า ชนเมื่อไหร่เติม suffix
// unique index เป็นด่านสุดท้าย ถ้าแพ้ race ก็ resolve ใหม่แล้วลองอีกรอบ
func (s *ProductService) Create(req CreateProductRequest) (*entity.Product, error) {
	for attempt := 0; attempt < 5; attempt++ {
		slug, err := resolveUniqueSlug(req.Name, 0, s.repo.SlugTaken)
		if err != nil {
			return nil, err
		}

		p := &entity.Product{
			Name:        req.Name,
			Slug:        slug,
			Price:       req.Price,
			Image:       req.Image,
			CategoryID:  req.CategoryID,
			Rating:      req.Rating,
			Reviews:     req.Reviews,
			Tag:         req.Tag,
			IsHighlight: req.IsHighlight,
			Description: req.Description,
		}

		err = s.repo.Create(p)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s.repo.FindByID(p.ID)
	}
	return nil, ErrSlugTaken
}

// UpdateProductRequest ใช้ pointer field, nil คือไม่แตะ field นั้น
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	CategoryID  *uint    `json:"categoryId"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Tag         *string  `json:"tag"`
	IsHighlight *bool    `json:"isHighlight"`
	Description *string  `json:"description"`
}

func (s *ProductService) Update(id uint, req UpdateProductRequest) (*entity.Product, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
		// เปลี่ยนชื่อจริงเท่านั้นถึง regen slug กัน slug เปลี่ยนมั่ว
		if *req.Name != current.Name {
			slug, err := resolveUniqueSlug(*req.Name, id, s.repo.SlugTaken)
			if err != nil {
				return nil, err
			}
			updates["slug"] = slug
		}
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Reviews != nil {
		updates["reviews"] = *req.Reviews
	}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.IsHighlight != nil {
		updates["is_highlight"] = *req.IsHighlight
	}
	if req.Description != nil {
		updates["description"] = *req.Description
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

func (s *ProductService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
