package insight

import (
	"strings"
	"testing"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/brightpaws/petcrm/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseCustomer() customer.Customer {
	return customer.Customer{
		HouseholdKey:     1001,
		PetTransactions:  3, // low frequency: no tier-specific block
		PetSpend:         50,
		TotalSpend:       2000,
		PetRatio:         2.5,
		Categories:       []customer.CategoryTag{{Group: customer.GroupDog, Sub: "Food & Treats"}},
		ClubPlusMember:   true,
		LastPurchaseDays: 10,
	}
}

func basePeers() dataset.PeerStats {
	return dataset.PeerStats{Count: 100, MeanPetSpend: 50, MeanTotalSpend: 2000, MeanPetRatio: 2.5}
}

func TestRatioBlockBoundaryExclusion(t *testing.T) {
	c := baseCustomer()
	peers := basePeers()

	// Exactly at the peer mean: neither ratio insight fires.
	res, err := Generate(c, peers)
	require.NoError(t, err)
	for _, ins := range res.Insights {
		assert.NotContains(t, ins, "share of pet spending")
	}

	c.PetRatio = peers.MeanPetRatio * 0.79
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, res.Insights[0], "low share of pet spending")

	c.PetRatio = peers.MeanPetRatio * 1.21
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, res.Insights[0], "very high share of pet spending")
}

func TestTierSpecificBlock(t *testing.T) {
	peers := basePeers()
	cases := []struct {
		transactions float64
		fragment     string
	}{
		{5, "every week"},
		{1, "monthly purchase pattern"},
		{4, "high frequency"},
		{8, "highest frequency"},
	}
	for _, tc := range cases {
		c := baseCustomer()
		c.PetTransactions = tc.transactions
		res, err := Generate(c, peers)
		require.NoError(t, err)
		assert.Contains(t, joined(res.Insights), tc.fragment, "tier text for transactions=%v", tc.transactions)
	}

	// Low frequency and over-a-month have no tier-specific text.
	c := baseCustomer()
	c.PetTransactions = 0.5
	res, err := Generate(c, peers)
	require.NoError(t, err)
	for _, ins := range res.Insights {
		assert.NotContains(t, ins, "frequency")
	}
}

func TestSpendBlockBands(t *testing.T) {
	peers := basePeers()

	c := baseCustomer()
	c.PetSpend = peers.MeanPetSpend * 0.69
	res, err := Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "low ticket size")

	c.PetSpend = peers.MeanPetSpend * 1.31
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "high-priced pet products")
}

func TestCategoryDiversityBlockAlwaysFires(t *testing.T) {
	peers := basePeers()

	c := baseCustomer()
	c.Categories = []customer.CategoryTag{
		{Group: customer.GroupDog, Sub: "Food & Treats"},
		{Group: customer.GroupCat, Sub: "Litter & Hygiene"},
		{Group: customer.GroupOther, Sub: "Fish & Aquarium"},
	}
	res, err := Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "comprehensive pet-care")

	c.Categories = c.Categories[:2]
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "specialized interest")

	c.Categories = c.Categories[:1]
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "focused on the DOG category")
}

func TestMembershipAndRecencyBlocks(t *testing.T) {
	peers := basePeers()

	c := baseCustomer()
	c.ClubPlusMember = false
	res, err := Generate(c, peers)
	require.NoError(t, err)
	assert.NotContains(t, joined(res.Insights), "Club+ member")
	assert.Contains(t, joined(res.MarketingTips), "Club+ sign-up pitch")

	c.ClubPlusMember = true
	c.LastPurchaseDays = 45
	res, err = Generate(c, peers)
	require.NoError(t, err)
	assert.Contains(t, joined(res.Insights), "Club+ member")
	assert.Contains(t, joined(res.Insights), "45 days ago")
}

func TestEmptyPeerGroupSkipsComparisons(t *testing.T) {
	c := baseCustomer()
	res, err := Generate(c, dataset.PeerStats{})
	assert.ErrorIs(t, err, ErrEmptyPeerGroup)

	// Comparison blocks skipped, the rest still fired.
	assert.NotContains(t, joined(res.Insights), "share of pet spending")
	assert.Contains(t, joined(res.Insights), "focused on the DOG category")
	assert.NotEmpty(t, res.MarketingTips)
}

func TestOutputFollowsBlockOrder(t *testing.T) {
	c := baseCustomer()
	c.PetTransactions = 5
	c.PetRatio = 0.1 // fires block 1 low branch
	c.LastPurchaseDays = 60
	res, err := Generate(c, basePeers())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(res.Insights), 4)
	assert.Contains(t, res.Insights[0], "low share of pet spending")
	assert.Contains(t, res.Insights[1], "every week")
	assert.Contains(t, res.Insights[len(res.Insights)-1], "days ago")
}

func joined(items []string) string {
	return strings.Join(items, "\n")
}
