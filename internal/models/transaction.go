package models

import "time"

// Transaction represents a spending or income record. Amount is expressed in
// minor currency units.
type Transaction struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID    *string    `gorm:"type:uuid" json:"wallet_id"`
	CategoryID  *string    `gorm:"type:uuid;index" json:"category_id"`
	BudgetID    *string    `gorm:"type:uuid" json:"budget_id"`
	Description string     `gorm:"type:text" json:"description"`
	SpentAt     *time.Time `json:"spent_at"`
	Amount      int64      `gorm:"type:bigint;not null;default:0" json:"amount"`
	Date        *time.Time `json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
