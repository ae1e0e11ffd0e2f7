package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"dompet/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a USER with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, fmt.Sprintf("user%d@test.com", nextID()), models.RoleUser)
}

// CreateTestAdmin creates an ADMIN with a hashed password and unique email.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, fmt.Sprintf("admin%d@test.com", nextID()), models.RoleAdmin)
}

// CreateTestUserWithRole creates a user with the given email and role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates an expense category owned by userID, or a
// system category when userID is nil.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID *string, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   models.CategoryTypeExpense,
		Slug:   fmt.Sprintf("fixture%d-%s", nextID(), name),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBudgetCategory attaches a sub-category row to categoryID.
func CreateTestBudgetCategory(t *testing.T, db *gorm.DB, categoryID string, amount int64) *models.BudgetCategory {
	t.Helper()

	row := &models.BudgetCategory{
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Allocation %d", nextID()),
		Amount:     amount,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test budget category: %v", err)
	}
	return row
}

// CreateTestTransaction creates a transaction of the given amount (in minor units).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, categoryID *string, amount int64) *models.Transaction {
	t.Helper()

	now := time.Now()
	tx := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Amount:      amount,
		Date:        &now,
		SpentAt:     &now,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
