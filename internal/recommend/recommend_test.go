package recommend

import (
	"testing"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/stretchr/testify/assert"
)

func tags(specs ...string) []customer.CategoryTag {
	var out []customer.CategoryTag
	for _, s := range specs {
		out = append(out, customer.ParseCategoryTag(s))
	}
	return out
}

func TestPetProductsSingleRule(t *testing.T) {
	got := PetProducts(tags("DOG-Food & Treats"))
	assert.Equal(t, []string{
		"Premium Dry Food (Bulk)",
		"Functional Treats (Joint & Dental)",
		"Wet Food Toppers",
		"Handmade Treats",
	}, got)
}

func TestPetProductsAdditiveAndCapped(t *testing.T) {
	got := PetProducts(tags("DOG-Food & Treats", "CAT-Food & Treats", "CAT-Litter & Hygiene"))
	assert.Len(t, got, MaxPetProducts)
	assertNoDuplicates(t, got)
	// Insertion order: dog food rule first.
	assert.Equal(t, "Premium Dry Food (Bulk)", got[0])
}

func TestPetProductsNoMatch(t *testing.T) {
	assert.Empty(t, PetProducts(tags("OTHER-Reptile Supplies")))
	assert.Empty(t, PetProducts(nil))
}

func TestRelatedProductsThresholds(t *testing.T) {
	base := RelatedProducts(tags("CAT-Food & Treats"), 1000)
	assert.Equal(t, relatedBase, base)

	premium := RelatedProducts(tags("CAT-Food & Treats"), 5001)
	assert.Len(t, premium, MaxRelatedProducts)
	assert.Contains(t, premium, "Premium Air Purifier")

	// Exactly at the threshold does not unlock the premium set.
	atThreshold := RelatedProducts(tags("CAT-Food & Treats"), 5000)
	assert.NotContains(t, atThreshold, "Premium Air Purifier")

	dog := RelatedProducts(tags("DOG-Leash & Carrier"), 1000)
	assert.Len(t, dog, MaxRelatedProducts)
	assert.Contains(t, dog, "Walking Sneakers")
}

func TestRelatedProductsCapAndDedup(t *testing.T) {
	got := RelatedProducts(tags("DOG-Food & Treats"), 9000)
	assert.Len(t, got, MaxRelatedProducts)
	assertNoDuplicates(t, got)
}

func TestReasons(t *testing.T) {
	got := Reasons(tags("DOG-Food & Treats", "CAT-Food & Treats"), 6000)
	assert.Contains(t, got, "Based on existing dog food purchase history")
	assert.Contains(t, got, "Expands the cat-specific product range")
	assert.Contains(t, got, "High-spend household: premium appliances included")

	assert.Empty(t, Reasons(nil, 100))
}

func assertNoDuplicates(t *testing.T, items []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item], "duplicate entry %q", item)
		seen[item] = true
	}
}
