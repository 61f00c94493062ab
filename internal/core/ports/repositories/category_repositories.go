package repositories

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	// FindCategoryByNameAndType matches the name case-insensitively within
	// the owner's categories of the given type.
	FindCategoryByNameAndType(ctx context.Context, ownerID string, name string, categoryType domain.TransactionType) (*domain.Category, error)
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository capabilities.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
