package predefined

import (
	"testing"

	"dompet/internal/models"
)

func TestCategories(t *testing.T) {
	cats, err := Categories()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("expected predefined categories")
	}

	seen := map[string]bool{}
	for _, c := range cats {
		if c.Name == "" {
			t.Error("predefined category without a name")
		}
		if c.Type != models.CategoryTypeIncome && c.Type != models.CategoryTypeExpense {
			t.Errorf("%s: unexpected type %q", c.Name, c.Type)
		}
		if seen[c.Name] {
			t.Errorf("duplicate predefined category %s", c.Name)
		}
		seen[c.Name] = true
	}
}
