package domain

// Category labels INCOME and EXPENSE transactions. Uniqueness is
// (owner, name, type) with the name compared case-insensitively.
type Category struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	OwnerID    string          `json:"ownerID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`  // INCOME or EXPENSE only
	Icon       string          `json:"icon"`  // e.g. an icon class like "bi-house-fill"
	Color      string          `json:"color"` // Hex color code, e.g. "#FF5733"
	AuditFields
}
