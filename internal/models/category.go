package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category groups transactions. A nil UserID marks a system-predefined
// category shared by everyone.
type Category struct {
	Base
	UserID  *string      `gorm:"type:uuid;index" json:"user_id"`
	Name    string       `gorm:"not null" json:"name"`
	Type    CategoryType `gorm:"type:varchar(16)" json:"type"`
	Slug    string       `gorm:"uniqueIndex;not null" json:"slug"`
	Picture string       `json:"picture"`

	SubCategories []BudgetCategory `gorm:"foreignKey:CategoryID" json:"sub_category,omitempty"`
}

// BudgetCategory is a read-only allocation of a category inside a budget.
type BudgetCategory struct {
	Base
	CategoryID string  `gorm:"type:uuid;not null;index" json:"category_id"`
	BudgetID   *string `gorm:"type:uuid" json:"budget_id"`
	Name       string  `json:"name"`
	Amount     int64   `gorm:"type:bigint;not null;default:0" json:"amount"`
}
