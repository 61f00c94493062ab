package dto

import "github.com/CesarBerbel/personal_finance_app/internal/core/domain"

// CreateCategoryRequest creates a transaction category.
type CreateCategoryRequest struct {
	Name  string                 `json:"name" validate:"required,max=100"`
	Type  domain.TransactionType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Icon  string                 `json:"icon" validate:"omitempty,max=50"`
	Color string                 `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest updates a category; nil fields are left unchanged.
// The type is fixed at creation.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Icon  *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}
