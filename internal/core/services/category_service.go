package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// CategoryService manages transaction categories. Names are unique
// case-insensitively per owner and type.
type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, ownerID, req.Name, req.Type)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q already exists for type %s", apperrors.ErrDuplicate, req.Name, req.Type)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    ownerID,
		Name:       req.Name,
		Type:       req.Type,
		Icon:       req.Icon,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.GetCategoryByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, ownerID, *req.Name, category.Type)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check category uniqueness: %w", err)
		}
		if existing != nil && existing.CategoryID != categoryID {
			return nil, fmt.Errorf("%w: category %q already exists for type %s", apperrors.ErrDuplicate, *req.Name, category.Type)
		}
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = ownerID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID string, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, ownerID, categoryID); err != nil {
		return err
	}
	// Transactions referencing this category keep their rows; the FK is
	// SET NULL so history survives without the label.
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
