package dataset

import (
	"testing"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(GenerateOptions{Seed: 42})
	b := Generate(GenerateOptions{Seed: 42})
	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b, "same seed must yield an identical table")

	c := Generate(GenerateOptions{Seed: 43})
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestGeneratePopulation(t *testing.T) {
	customers := Generate(GenerateOptions{Seed: 42})
	assert.Len(t, customers, 1124)

	counts := make(map[customer.Tier]int)
	for _, c := range customers {
		counts[c.Tier()]++
	}
	assert.Equal(t, 297, counts[customer.TierUltraHighFrequency])
	assert.Equal(t, 266, counts[customer.TierWeekly])
	assert.Equal(t, 237, counts[customer.TierMonthly])
	assert.Equal(t, 139, counts[customer.TierHighFrequency])
	assert.Equal(t, 98, counts[customer.TierLowFrequency])
	assert.Equal(t, 87, counts[customer.TierOverAMonth])
}

func TestGenerateRecordShape(t *testing.T) {
	customers := Generate(GenerateOptions{Seed: 42})
	for _, c := range customers {
		require.GreaterOrEqual(t, len(c.Categories), 1)
		require.LessOrEqual(t, len(c.Categories), 3)
		assert.GreaterOrEqual(t, c.PetSpend, 10.0)
		assert.LessOrEqual(t, c.PetSpend, 200.0)
		assert.GreaterOrEqual(t, c.TotalSpend, 500.0)
		assert.LessOrEqual(t, c.TotalSpend, 8000.0)
		assert.InDelta(t, c.PetSpend/c.TotalSpend*100, c.PetRatio, 0.0001)
		assert.GreaterOrEqual(t, c.LastPurchaseDays, 1)
		assert.LessOrEqual(t, c.LastPurchaseDays, 89)
		assert.Regexp(t, `^010-\d{4}-\d{4}$`, c.PhoneNumber)
		assert.NotEmpty(t, c.HouseholdSize)
		assert.NotEmpty(t, c.PetProfile)
	}
}

func TestStoreLookupsAndStats(t *testing.T) {
	s := NewStore(42)

	first := s.All()[0]
	got, ok := s.ByID(first.HouseholdKey)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = s.ByID(-1)
	assert.False(t, ok)

	counts := s.TierCounts()
	require.Len(t, counts, 6)
	total := 0
	for _, tc := range counts {
		total += tc.Count
	}
	assert.Equal(t, s.Count(), total)

	stats := s.TierStats(customer.TierWeekly)
	assert.Equal(t, 266, stats.Count)
	assert.Greater(t, stats.MeanTotalSpend, 0.0)
	assert.Greater(t, stats.MeanPetRatio, 0.0)
}

func TestPeerStatsEmptyGroup(t *testing.T) {
	stats := PeerStatsFor(nil)
	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.MeanTotalSpend)
}

func TestRanksFor(t *testing.T) {
	s := NewStoreFromRecords([]customer.Customer{
		{HouseholdKey: 1, PetTransactions: 3, PetSpend: 10, TotalSpend: 1000},
		{HouseholdKey: 2, PetTransactions: 3, PetSpend: 20, TotalSpend: 2000},
		{HouseholdKey: 3, PetTransactions: 3, PetSpend: 30, TotalSpend: 3000},
	})

	mid, ok := s.ByID(2)
	require.True(t, ok)
	ranks := s.RanksFor(mid)
	assert.Equal(t, 3, ranks.GroupSize)
	assert.Equal(t, 2, ranks.PetSpendRank)
	assert.Equal(t, 2, ranks.TotalRank)
}

func TestTopBySpend(t *testing.T) {
	s := NewStore(42)
	top := s.TopBySpend(10)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalSpend, top[i].TotalSpend)
	}
}

func TestUpgradeCandidatesAndTotals(t *testing.T) {
	s := NewStore(42)

	candidates := s.UpgradeCandidates()
	// low + monthly + over-a-month populations
	assert.Len(t, candidates, 98+237+87)
	for _, c := range candidates {
		assert.Contains(t,
			[]customer.Tier{customer.TierLowFrequency, customer.TierMonthly, customer.TierOverAMonth},
			c.Tier())
	}

	var candidateSpend float64
	for _, c := range candidates {
		candidateSpend += c.TotalSpend
	}

	totals := s.Totals()
	assert.Equal(t, s.Count(), totals.CustomerCount)
	assert.InDelta(t, candidateSpend*0.15, totals.UpgradePotential, 0.01)
	assert.Greater(t, totals.AvgPetSpend, 0.0)

	dist := SpendDistribution(candidates)
	require.Len(t, dist, 4)
	sum := 0
	for _, r := range dist {
		sum += r.Count
	}
	assert.Equal(t, len(candidates), sum)
}

func TestCategoryChangeTable(t *testing.T) {
	s := NewStore(42)
	changes := s.CategoryChangeTable()
	require.Len(t, changes, 10)
	assert.Equal(t, "BEEF", changes[0].Category)
	for i := 1; i < len(changes); i++ {
		assert.GreaterOrEqual(t, changes[i-1].SalesChange, changes[i].SalesChange)
	}
}
