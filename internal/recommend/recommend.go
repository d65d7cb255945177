// Package recommend holds the curated product recommendation tables. Both
// lookups are additive rule tables: every matching rule contributes its
// products, duplicates are removed, and output order is rule insertion order
// (no relevance ranking).
package recommend

import (
	"strings"

	"github.com/brightpaws/petcrm/internal/customer"
)

const (
	// MaxPetProducts caps the pet recommendation list.
	MaxPetProducts = 6
	// MaxRelatedProducts caps the related household-product list.
	MaxRelatedProducts = 8
	// PremiumSpendThreshold unlocks the premium related-product set.
	PremiumSpendThreshold = 5000
)

// petRule maps a (group, subcategory keyword) pair to its product set.
type petRule struct {
	group    customer.MainGroup
	subMatch string
	products []string
}

var petRules = []petRule{
	{customer.GroupDog, "food", []string{
		"Premium Dry Food (Bulk)",
		"Functional Treats (Joint & Dental)",
		"Wet Food Toppers",
		"Handmade Treats",
	}},
	{customer.GroupCat, "food", []string{
		"Age-Tailored Cat Food",
		"Hairball Care Treats",
		"Freeze-Dried Treats",
		"Wet Pouch Multipack",
	}},
	{customer.GroupCat, "litter", []string{
		"Clumping Bentonite Litter",
		"Unscented Tofu Litter",
		"Automatic Feeder & Water Fountain",
		"Litter Box Mat",
	}},
	{customer.GroupDog, "health", []string{
		"Multivitamin Complex",
		"Joint Support Supplement",
		"Skin & Coat Conditioner",
		"Probiotic Supplement",
	}},
}

var relatedBase = []string{
	"Kitchen Towels (Bulk)",
	"Alcohol-Free Wet Wipes",
	"Air Purifier Filters",
	"Vacuum Dust Bags",
	"Gentle Laundry Detergent",
	"Floor Cleaning Supplies",
}

var relatedPremium = []string{
	"Premium Air Purifier",
	"Robot Vacuum",
	"Luxury Laundry Detergent",
	"Eco-Friendly Cleaning Set",
}

var relatedOutdoor = []string{
	"Walking Sneakers",
	"Outdoor Jacket",
	"Portable Water Bottle",
	"Car Seat Cover",
}

// PetProducts returns up to six pet product recommendations for the
// customer's category tags.
func PetProducts(tags []customer.CategoryTag) []string {
	var out []string
	seen := make(map[string]bool)
	for _, rule := range petRules {
		if !matchesRule(tags, rule) {
			continue
		}
		for _, p := range rule.products {
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	if len(out) > MaxPetProducts {
		out = out[:MaxPetProducts]
	}
	return out
}

// RelatedProducts returns up to eight related household products. High
// spenders unlock the premium set; dog owners unlock the outdoor set.
func RelatedProducts(tags []customer.CategoryTag, totalSpend float64) []string {
	out := make([]string, 0, MaxRelatedProducts)
	out = append(out, relatedBase...)
	if totalSpend > PremiumSpendThreshold {
		out = append(out, relatedPremium...)
	}
	if hasGroup(tags, customer.GroupDog) {
		out = append(out, relatedOutdoor...)
	}

	deduped := out[:0]
	seen := make(map[string]bool, len(out))
	for _, p := range out {
		if seen[p] {
			continue
		}
		seen[p] = true
		deduped = append(deduped, p)
	}
	if len(deduped) > MaxRelatedProducts {
		deduped = deduped[:MaxRelatedProducts]
	}
	return deduped
}

// Reasons explains why the recommendation sets apply, keyed off the held
// categories and spend level. Mirrors the drill-down explanations in the
// analyst view.
func Reasons(tags []customer.CategoryTag, totalSpend float64) []string {
	var out []string
	if matchesRule(tags, petRules[0]) {
		out = append(out, "Based on existing dog food purchase history")
		out = append(out, "Suggests an upgrade path to the premium line")
	}
	if hasGroup(tags, customer.GroupCat) {
		out = append(out, "Expands the cat-specific product range")
		out = append(out, "Prioritizes health-focused cat products")
	}
	if totalSpend > PremiumSpendThreshold {
		out = append(out, "High-spend household: premium appliances included")
	}
	if hasGroup(tags, customer.GroupDog) {
		out = append(out, "Dog walking routine: outdoor gear included")
	}
	return out
}

func matchesRule(tags []customer.CategoryTag, rule petRule) bool {
	for _, t := range tags {
		if t.Group == rule.group && strings.Contains(strings.ToLower(t.Sub), rule.subMatch) {
			return true
		}
	}
	return false
}

func hasGroup(tags []customer.CategoryTag, g customer.MainGroup) bool {
	for _, t := range tags {
		if t.Group == g {
			return true
		}
	}
	return false
}
