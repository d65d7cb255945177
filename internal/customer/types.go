// Package customer defines the core CRM record types and the pure
// classification/estimation rules derived from them.
package customer

import "strings"

// MainGroup is the top-level product group a category tag belongs to.
type MainGroup string

const (
	GroupDog     MainGroup = "DOG"
	GroupCat     MainGroup = "CAT"
	GroupOther   MainGroup = "OTHER"
	GroupUnknown MainGroup = "UNKNOWN"
)

// CategoryTag is a structured purchase-category tag. Tags arrive on the wire
// as "MAINGROUP-Subcategory" strings and are parsed once at ingestion so the
// rule engines never re-split strings.
type CategoryTag struct {
	Group MainGroup `json:"group"`
	Sub   string    `json:"sub"`
}

// String renders the tag back to its wire form.
func (t CategoryTag) String() string {
	if t.Group == GroupUnknown {
		return t.Sub
	}
	return string(t.Group) + "-" + t.Sub
}

// ParseCategoryTag parses a "MAINGROUP-Subcategory" string. Unrecognized
// prefixes resolve to GroupUnknown rather than an error; the classifiers
// downstream are total functions.
func ParseCategoryTag(s string) CategoryTag {
	s = strings.TrimSpace(s)
	idx := strings.Index(s, "-")
	if idx < 0 {
		return CategoryTag{Group: GroupUnknown, Sub: s}
	}
	group := MainGroup(strings.ToUpper(s[:idx]))
	switch group {
	case GroupDog, GroupCat, GroupOther:
		return CategoryTag{Group: group, Sub: s[idx+1:]}
	}
	return CategoryTag{Group: GroupUnknown, Sub: s}
}

// ParseCategoryTags parses a comma-separated tag list, preserving order.
func ParseCategoryTags(s string) []CategoryTag {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]CategoryTag, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tags = append(tags, ParseCategoryTag(p))
	}
	return tags
}

// JoinCategoryTags renders tags to the comma-separated wire form.
func JoinCategoryTags(tags []CategoryTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// Customer is one household record in the CRM dataset.
type Customer struct {
	HouseholdKey     int           `json:"household_key"`
	Name             string        `json:"customer_name"`
	PetTransactions  float64       `json:"monthly_pet_transactions"`
	PetSpend         float64       `json:"pet_spend"`
	TotalSpend       float64       `json:"total_spend"`
	PetRatio         float64       `json:"pet_ratio"`
	Categories       []CategoryTag `json:"pet_categories"`
	HouseholdSize    string        `json:"household_size"`
	PetProfile       string        `json:"pet_profile"`
	ClubPlusMember   bool          `json:"club_plus_member"`
	LastPurchaseDays int           `json:"last_purchase_days"`
	PhoneNumber      string        `json:"phone_number"`
}

// Tier returns the customer's purchase-frequency tier, always recomputed
// from the transaction count. The tier is never stored as a source of truth.
func (c Customer) Tier() Tier {
	return Classify(c.PetTransactions)
}

// MainGroups returns the distinct main groups across the customer's tags,
// in first-seen order.
func (c Customer) MainGroups() []MainGroup {
	seen := make(map[MainGroup]bool, 3)
	var groups []MainGroup
	for _, t := range c.Categories {
		if t.Group == GroupUnknown || seen[t.Group] {
			continue
		}
		seen[t.Group] = true
		groups = append(groups, t.Group)
	}
	return groups
}

// HasGroup reports whether any tag belongs to the given main group.
func (c Customer) HasGroup(g MainGroup) bool {
	for _, t := range c.Categories {
		if t.Group == g {
			return true
		}
	}
	return false
}

// RecomputePetRatio refreshes the derived pet_ratio column. Call after
// changing either spend operand.
func (c *Customer) RecomputePetRatio() {
	if c.TotalSpend <= 0 {
		c.PetRatio = 0
		return
	}
	c.PetRatio = c.PetSpend / c.TotalSpend * 100
}

// MaskPhoneNumber hides the last four digits of a phone number for display.
func MaskPhoneNumber(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return phone[:len(phone)-4] + "****"
}
