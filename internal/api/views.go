package api

import "github.com/brightpaws/petcrm/internal/customer"

// customerView is the wire shape of a customer record. The phone number is
// masked on every API surface; raw digits never leave the process.
type customerView struct {
	customer.Customer
	PhoneNumber string        `json:"phone_number"`
	Tier        customer.Tier `json:"tier"`
	TierLabel   string        `json:"tier_label"`
}

func viewOf(c customer.Customer) customerView {
	return customerView{
		Customer:    c,
		PhoneNumber: customer.MaskPhoneNumber(c.PhoneNumber),
		Tier:        c.Tier(),
		TierLabel:   c.Tier().Label(),
	}
}

func viewsOf(customers []customer.Customer) []customerView {
	out := make([]customerView, len(customers))
	for i, c := range customers {
		out[i] = viewOf(c)
	}
	return out
}
