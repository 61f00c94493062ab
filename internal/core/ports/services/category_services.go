package services

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID string, categoryID string) error
}
