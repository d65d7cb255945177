// Package insight composes per-customer analysis text from the customer
// record and peer-group statistics. Rule blocks fire independently and in a
// fixed order; the function has no side effects beyond its return values.
package insight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/brightpaws/petcrm/internal/dataset"
)

// ErrEmptyPeerGroup reports that the comparison population was empty. The
// ratio and spend comparison blocks are skipped but the remaining blocks
// still produce output, so callers receive a partial result alongside it.
var ErrEmptyPeerGroup = errors.New("insight: empty peer group")

// Result holds the generated analysis for one customer.
type Result struct {
	Insights      []string `json:"insights"`
	MarketingTips []string `json:"marketing_tips"`
}

// Generate evaluates the ordered rule blocks for one customer against their
// peer group (typically same-tier customers).
func Generate(c customer.Customer, peers dataset.PeerStats) (Result, error) {
	var res Result
	var err error

	// Block 1: pet-spend ratio vs peer mean. Open interval: a ratio inside
	// 80%-120% of the mean fires neither branch.
	if peers.Count == 0 {
		err = ErrEmptyPeerGroup
	} else if c.PetRatio < peers.MeanPetRatio*0.8 {
		res.add(
			fmt.Sprintf("Customer %d has a comparatively low share of pet spending overall.", c.HouseholdKey),
			"Pet promotion target: interested but low-spend customer. Discounts or bundle offers can lift spend.")
	} else if c.PetRatio > peers.MeanPetRatio*1.2 {
		res.add(
			fmt.Sprintf("Customer %d has a very high share of pet spending.", c.HouseholdKey),
			"VIP pet customer: prioritize premium services and early access to new products.")
	}

	// Block 2: tier-specific analysis.
	switch c.Tier() {
	case customer.TierWeekly:
		res.add(
			"Buys steadily every week but spends relatively little on pet products.",
			"Frequency-based offer: weekly buyer, a recurring-delivery or subscription pitch fits well.")
	case customer.TierMonthly:
		res.add(
			"Shows a stable monthly purchase pattern.",
			"Recurring purchase nudge: offer a subscription discount built on the monthly cadence.")
	case customer.TierHighFrequency:
		res.add(
			"A loyal customer buying pet products at high frequency.",
			"Loyalty reinforcement: propose VIP benefits and a rewards program.")
	case customer.TierUltraHighFrequency:
		res.add(
			"A VIP customer buying pet products at the highest frequency.",
			"VIP account care: premium service, early access, and personal concierge offers.")
	}

	// Block 3: pet-spend amount vs peer mean.
	if peers.Count > 0 {
		if c.PetSpend < peers.MeanPetSpend*0.7 {
			res.add(
				"Purchase pattern suggests low ticket size or low frequency.",
				"Ticket-size strategy: premium product trials and bundle recommendations.")
		} else if c.PetSpend > peers.MeanPetSpend*1.3 {
			res.add(
				"A premium customer buying high-priced pet products.",
				"Premium service: notify first when new high-end products launch.")
		}
	}

	// Block 4: category diversity. Exactly one of the three branches fires.
	groups := c.MainGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = string(g)
	}
	switch {
	case len(groups) >= 3:
		res.add(
			fmt.Sprintf("A comprehensive pet-care customer interested in multiple categories (%s).", strings.Join(names, ", ")),
			"Category retargeting: broad purchases make tailored cross-selling highly likely to land.")
	case len(groups) == 2:
		res.add(
			fmt.Sprintf("Shows a specialized interest concentrated in the %s categories.", strings.Join(names, ", ")),
			"Specialization play: treat as a category specialist; pitch new products and expert services there.")
	default:
		label := "pet"
		if len(groups) == 1 {
			label = names[0]
		}
		res.add(
			fmt.Sprintf("Shows a purchase pattern focused on the %s category.", label),
			"Category expansion: extend purchases from the current category into adjacent products.")
	}

	// Block 5: membership. Non-members get only a sign-up tip.
	if c.ClubPlusMember {
		res.add(
			"A Club+ member with strong brand loyalty.",
			"Membership perks: Club+ exclusive events and early-bird benefits keep satisfaction high.")
	} else {
		res.MarketingTips = append(res.MarketingTips,
			"Club+ sign-up pitch: use the current purchase pattern to sell membership benefits.")
	}

	// Block 6: recency.
	if c.LastPurchaseDays > 30 {
		res.add(
			fmt.Sprintf("Last purchase was %d days ago; a revisit nudge is needed.", c.LastPurchaseDays),
			"Re-engagement: personalized coupons and reminder pushes to bring the customer back.")
	}

	return res, err
}

func (r *Result) add(insight, tip string) {
	r.Insights = append(r.Insights, insight)
	r.MarketingTips = append(r.MarketingTips, tip)
}
