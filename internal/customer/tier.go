package customer

// Tier is one of six ordered purchase-frequency classifications derived from
// a customer's monthly pet transaction count.
type Tier int

const (
	TierOverAMonth Tier = iota
	TierMonthly
	TierLowFrequency
	TierHighFrequency
	TierWeekly
	TierUltraHighFrequency
)

// String returns the stable API identifier for the tier.
func (t Tier) String() string {
	switch t {
	case TierOverAMonth:
		return "over_a_month"
	case TierMonthly:
		return "monthly"
	case TierLowFrequency:
		return "low_frequency"
	case TierHighFrequency:
		return "high_frequency"
	case TierWeekly:
		return "weekly"
	case TierUltraHighFrequency:
		return "ultra_high_frequency"
	}
	return "unknown"
}

// Label returns the human-readable tier name used in dashboards and messages.
func (t Tier) Label() string {
	switch t {
	case TierOverAMonth:
		return "Over a Month"
	case TierMonthly:
		return "Monthly Buyer"
	case TierLowFrequency:
		return "Low Frequency"
	case TierHighFrequency:
		return "High Frequency"
	case TierWeekly:
		return "Weekly Buyer"
	case TierUltraHighFrequency:
		return "Ultra High Frequency"
	}
	return "Unknown"
}

// Cadence describes the purchase interval the tier represents.
func (t Tier) Cadence() string {
	switch t {
	case TierOverAMonth:
		return "30+ day interval (under 1 purchase/month)"
	case TierMonthly:
		return "14-30 day interval (1-2 purchases/month)"
	case TierLowFrequency:
		return "11-13 day interval (2-3 purchases/month)"
	case TierHighFrequency:
		return "8-10 day interval (3-4 purchases/month)"
	case TierWeekly:
		return "5-7 day interval (4-6 purchases/month)"
	case TierUltraHighFrequency:
		return "0-4 day interval (7+ purchases/month)"
	}
	return ""
}

// MarshalText makes tiers render as their API identifiers in JSON.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Tiers lists every tier in ascending engagement order.
func Tiers() []Tier {
	return []Tier{
		TierOverAMonth,
		TierMonthly,
		TierLowFrequency,
		TierHighFrequency,
		TierWeekly,
		TierUltraHighFrequency,
	}
}

// ParseTier maps an API identifier back to its tier.
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers() {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Classify maps a monthly transaction count to its frequency tier.
//
// The rule chain is evaluated in order with first-match-wins semantics so
// fractional counts between integer boundaries fall through to the nearest
// lower branch. Pure and total: every real input maps to exactly one tier.
func Classify(monthlyTransactions float64) Tier {
	switch {
	case monthlyTransactions < 1:
		return TierOverAMonth
	case monthlyTransactions <= 2:
		return TierMonthly
	case monthlyTransactions == 3:
		return TierLowFrequency
	case monthlyTransactions == 4:
		return TierHighFrequency
	case monthlyTransactions <= 6:
		return TierWeekly
	}
	return TierUltraHighFrequency
}
