package dataset

import (
	"sort"

	"github.com/brightpaws/petcrm/internal/customer"
)

// Store holds the in-process customer table and answers the aggregate
// queries the dashboard and rule engines need. The table is read-only after
// construction, so no locking is required.
type Store struct {
	customers []customer.Customer
	byID      map[int]int // household key -> index
	changes   []CategoryChange
}

// NewStore generates a synthetic table from the given seed and wraps it in
// a store.
func NewStore(seed int64) *Store {
	return NewStoreFromRecords(Generate(GenerateOptions{Seed: seed}))
}

// NewStoreFromRecords wraps an externally supplied conforming table. The
// caller is responsible for loading; the store never reads files itself.
// Derived columns missing from the input are filled in.
func NewStoreFromRecords(customers []customer.Customer) *Store {
	s := &Store{
		customers: customers,
		byID:      make(map[int]int, len(customers)),
		changes:   CategoryChanges(),
	}
	for i := range s.customers {
		c := &s.customers[i]
		if c.PetRatio == 0 && c.TotalSpend > 0 {
			c.RecomputePetRatio()
		}
		if c.HouseholdSize == "" {
			c.HouseholdSize = customer.EstimateHouseholdSize(c.TotalSpend)
		}
		if c.PetProfile == "" {
			c.PetProfile = customer.EstimateProfile(c.Categories, c.PetSpend, nil)
		}
		s.byID[c.HouseholdKey] = i
	}
	return s
}

// Count returns the number of customers in the table.
func (s *Store) Count() int {
	return len(s.customers)
}

// All returns the full customer table.
func (s *Store) All() []customer.Customer {
	return s.customers
}

// ByID looks up a customer by household key.
func (s *Store) ByID(householdKey int) (customer.Customer, bool) {
	idx, ok := s.byID[householdKey]
	if !ok {
		return customer.Customer{}, false
	}
	return s.customers[idx], true
}

// ByTier returns every customer in the given frequency tier.
func (s *Store) ByTier(tier customer.Tier) []customer.Customer {
	var out []customer.Customer
	for _, c := range s.customers {
		if c.Tier() == tier {
			out = append(out, c)
		}
	}
	return out
}

// TierCount holds the population of one tier for the distribution chart.
type TierCount struct {
	Tier    customer.Tier `json:"tier"`
	Label   string        `json:"label"`
	Cadence string        `json:"cadence"`
	Count   int           `json:"count"`
	Share   float64       `json:"share"` // percentage of all customers
}

// TierCounts returns the tier distribution in ascending engagement order.
func (s *Store) TierCounts() []TierCount {
	counts := make(map[customer.Tier]int)
	for _, c := range s.customers {
		counts[c.Tier()]++
	}

	out := make([]TierCount, 0, 6)
	for _, tier := range customer.Tiers() {
		tc := TierCount{
			Tier:    tier,
			Label:   tier.Label(),
			Cadence: tier.Cadence(),
			Count:   counts[tier],
		}
		if len(s.customers) > 0 {
			tc.Share = float64(tc.Count) / float64(len(s.customers)) * 100
		}
		out = append(out, tc)
	}
	return out
}

// PeerStats summarizes the comparison population used by the insight
// generator and the revenue projector.
type PeerStats struct {
	Count          int     `json:"count"`
	MeanPetSpend   float64 `json:"mean_pet_spend"`
	MeanTotalSpend float64 `json:"mean_total_spend"`
	MeanPetRatio   float64 `json:"mean_pet_ratio"`
	ClubPlusCount  int     `json:"club_plus_count"`
}

// PeerStatsFor computes aggregate statistics over a customer slice. A zero
// count leaves every mean at zero; callers guard against dividing by it.
func PeerStatsFor(customers []customer.Customer) PeerStats {
	stats := PeerStats{Count: len(customers)}
	if stats.Count == 0 {
		return stats
	}
	for _, c := range customers {
		stats.MeanPetSpend += c.PetSpend
		stats.MeanTotalSpend += c.TotalSpend
		stats.MeanPetRatio += c.PetRatio
		if c.ClubPlusMember {
			stats.ClubPlusCount++
		}
	}
	n := float64(stats.Count)
	stats.MeanPetSpend /= n
	stats.MeanTotalSpend /= n
	stats.MeanPetRatio /= n
	return stats
}

// TierStats returns peer statistics for one frequency tier.
func (s *Store) TierStats(tier customer.Tier) PeerStats {
	return PeerStatsFor(s.ByTier(tier))
}

// TierRanks holds a customer's standing inside their frequency tier.
// Rank 1 is the lowest value, matching the source dashboard's convention
// (count of peers strictly below, plus one).
type TierRanks struct {
	GroupSize    int `json:"group_size"`
	PetSpendRank int `json:"pet_spend_rank"`
	TotalRank    int `json:"total_spend_rank"`
	PetRatioRank int `json:"pet_ratio_rank"`
}

// RanksFor computes a customer's in-tier ranks.
func (s *Store) RanksFor(c customer.Customer) TierRanks {
	peers := s.ByTier(c.Tier())
	ranks := TierRanks{GroupSize: len(peers), PetSpendRank: 1, TotalRank: 1, PetRatioRank: 1}
	for _, p := range peers {
		if p.PetSpend < c.PetSpend {
			ranks.PetSpendRank++
		}
		if p.TotalSpend < c.TotalSpend {
			ranks.TotalRank++
		}
		if p.PetRatio < c.PetRatio {
			ranks.PetRatioRank++
		}
	}
	return ranks
}

// TopBySpend returns the n customers with the highest total spend.
func (s *Store) TopBySpend(n int) []customer.Customer {
	sorted := make([]customer.Customer, len(s.customers))
	copy(sorted, s.customers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalSpend > sorted[j].TotalSpend
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// upgradeTiers are the low-engagement tiers targeted by upgrade campaigns.
var upgradeTiers = map[customer.Tier]bool{
	customer.TierLowFrequency: true,
	customer.TierMonthly:      true,
	customer.TierOverAMonth:   true,
}

// UpgradeCandidates returns customers in the low-engagement tiers.
func (s *Store) UpgradeCandidates() []customer.Customer {
	var out []customer.Customer
	for _, c := range s.customers {
		if upgradeTiers[c.Tier()] {
			out = append(out, c)
		}
	}
	return out
}

// SpendRange is one bucket of the upgrade-candidate pet-spend histogram.
type SpendRange struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SpendDistribution buckets a customer slice by pet spend.
func SpendDistribution(customers []customer.Customer) []SpendRange {
	ranges := []SpendRange{
		{Label: "0-25"},
		{Label: "25-50"},
		{Label: "50-100"},
		{Label: "100+"},
	}
	for _, c := range customers {
		switch {
		case c.PetSpend <= 25:
			ranges[0].Count++
		case c.PetSpend <= 50:
			ranges[1].Count++
		case c.PetSpend <= 100:
			ranges[2].Count++
		default:
			ranges[3].Count++
		}
	}
	return ranges
}

// Totals is the dashboard's headline metric row.
type Totals struct {
	CustomerCount    int     `json:"customer_count"`
	TotalPetRevenue  float64 `json:"total_pet_revenue"`
	AvgPetSpend      float64 `json:"avg_pet_spend"`
	UpgradePotential float64 `json:"upgrade_potential"` // 15% of candidates' total spend
}

// Totals computes the headline metrics.
func (s *Store) Totals() Totals {
	t := Totals{CustomerCount: len(s.customers)}
	for _, c := range s.customers {
		t.TotalPetRevenue += c.PetSpend
	}
	if t.CustomerCount > 0 {
		t.AvgPetSpend = t.TotalPetRevenue / float64(t.CustomerCount)
	}
	for _, c := range s.UpgradeCandidates() {
		t.UpgradePotential += c.TotalSpend * 0.15
	}
	return t
}

// CategoryChangeTable returns the static category sales-change reference.
func (s *Store) CategoryChangeTable() []CategoryChange {
	return s.changes
}
