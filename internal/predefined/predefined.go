// Package predefined holds the starter categories copied to a user's
// account by the bulk create endpoint.
package predefined

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"dompet/internal/models"
)

//go:embed categories.json
var categoriesJSON []byte

// Category is one predefined entry.
type Category struct {
	Name string              `json:"name"`
	Type models.CategoryType `json:"type"`
	Icon string              `json:"icon"`
}

var loadCategories = sync.OnceValues(func() ([]Category, error) {
	var doc struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(categoriesJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode predefined categories: %w", err)
	}
	return doc.Categories, nil
})

// Categories returns the predefined category list. The slice is shared and
// must not be modified.
func Categories() ([]Category, error) {
	return loadCategories()
}
