package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetUserCategories lists the user's categories, seeding the fixed default
// set on first use.
func (s *categoryService) GetUserCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if len(categories) > 0 {
		return categories, nil
	}

	seeded := make([]models.Category, 0, len(models.DefaultCategories))
	for _, d := range models.DefaultCategories {
		seeded = append(seeded, models.Category{
			UserID: userID,
			Name:   d.Name,
			Kind:   d.Kind,
			Color:  d.Color,
		})
	}
	if err := s.db.Create(&seeded).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return seeded, nil
}

// CreateCategory appends a new category label for the user.
func (s *categoryService) CreateCategory(userID, name string, kind models.CategoryKind, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category with this name already exists")
	}

	category := &models.Category{UserID: userID, Name: name, Kind: kind, Color: color}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return category, nil
}

// DeleteCategory removes a category label. Transactions referencing the name
// keep it: the label is free text, not a foreign key. A delete affecting zero
// rows is surfaced as ErrPermissionOrMissing rather than silent success.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	res := s.db.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&models.Category{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPermissionOrMissing
	}
	return nil
}
