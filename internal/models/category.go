package models

// Category classifies income and expense transactions.
type Category struct {
	CategoryID string `db:"category_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Icon       string `db:"icon"`
	Color      string `db:"color"`
	AuditFields
}
