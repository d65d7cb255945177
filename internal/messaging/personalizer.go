package messaging

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/osteele/liquid"
)

// Recognized template placeholders, filled from the customer record.
const (
	FieldCustomerName  = "customer_name"
	FieldPetProfile    = "pet_profile"
	FieldLastPurchase  = "last_purchase_days"
	FieldFrequency     = "frequency_category"
	FieldHouseholdSize = "household_size"
)

// varPattern finds {{ variable }} references, with or without filters.
var varPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_.]*?)(?:\s*\||\s*\}\})`)

// Personalizer renders Liquid message templates against customer records.
// Rendering is strict: a template referencing a placeholder absent from the
// customer context fails with MissingFieldError instead of silently
// dropping the variable.
type Personalizer struct {
	engine *liquid.Engine
}

// NewPersonalizer builds the template engine.
func NewPersonalizer() *Personalizer {
	return &Personalizer{engine: liquid.NewEngine()}
}

// Context builds the render context for one customer.
func Context(c customer.Customer) map[string]interface{} {
	return map[string]interface{}{
		FieldCustomerName:  c.Name,
		FieldPetProfile:    c.PetProfile,
		FieldLastPurchase:  c.LastPurchaseDays,
		FieldFrequency:     c.Tier().Label(),
		FieldHouseholdSize: c.HouseholdSize,
	}
}

// Personalize fills the template's placeholders with the customer's field
// values.
func (p *Personalizer) Personalize(template string, c customer.Customer) (string, error) {
	ctx := Context(c)

	if field, ok := firstUnknownVariable(template, ctx); !ok {
		return "", &MissingFieldError{Field: field}
	}

	out, err := p.engine.ParseAndRenderString(template, ctx)
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return out, nil
}

// Validate checks a template's syntax and placeholder set without rendering.
func (p *Personalizer) Validate(template string) error {
	if _, err := p.engine.ParseString(template); err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if field, ok := firstUnknownVariable(template, Context(customer.Customer{})); !ok {
		return &MissingFieldError{Field: field}
	}
	return nil
}

// firstUnknownVariable scans the template for a variable reference missing
// from the context. Returns ok=true when every reference is recognized.
func firstUnknownVariable(template string, ctx map[string]interface{}) (string, bool) {
	for _, match := range varPattern.FindAllStringSubmatch(template, -1) {
		if len(match) < 2 {
			continue
		}
		name := strings.TrimSpace(match[1])
		if _, ok := ctx[name]; !ok {
			return name, false
		}
	}
	return "", true
}
