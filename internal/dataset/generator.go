// Package dataset generates and serves the synthetic customer table the
// dashboard runs on. The generator is deterministic for a fixed seed; the
// store treats the generated table as immutable reference data.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/brightpaws/petcrm/internal/customer"
)

// Default tier population, matched to the distribution observed in the real
// transaction data the sample set was modeled on.
var defaultTierPopulation = []struct {
	tier  customer.Tier
	count int
}{
	{customer.TierUltraHighFrequency, 297},
	{customer.TierWeekly, 266},
	{customer.TierMonthly, 237},
	{customer.TierHighFrequency, 139},
	{customer.TierLowFrequency, 98},
	{customer.TierOverAMonth, 87},
}

// catalog is the full set of category tags a generated customer can hold.
var catalog = []customer.CategoryTag{
	{Group: customer.GroupDog, Sub: "Food & Treats"},
	{Group: customer.GroupDog, Sub: "Toys & Accessories"},
	{Group: customer.GroupDog, Sub: "Health & Supplements"},
	{Group: customer.GroupDog, Sub: "Leash & Carrier"},
	{Group: customer.GroupCat, Sub: "Food & Treats"},
	{Group: customer.GroupCat, Sub: "Litter & Hygiene"},
	{Group: customer.GroupCat, Sub: "Toys & Accessories"},
	{Group: customer.GroupCat, Sub: "Health & Supplements"},
	{Group: customer.GroupOther, Sub: "Poultry Feed & Supplies"},
	{Group: customer.GroupOther, Sub: "Fish & Aquarium"},
	{Group: customer.GroupOther, Sub: "Hamster & Small Pets"},
	{Group: customer.GroupOther, Sub: "Reptile Supplies"},
}

var firstNames = []string{
	"Alex", "Bailey", "Casey", "Dana", "Ellis", "Frankie", "Gray", "Harper",
	"Indra", "Jordan", "Kai", "Lee", "Morgan", "Noel", "Oakley", "Parker",
	"Quinn", "Reese", "Sam", "Taylor",
}

var lastNames = []string{
	"Adams", "Bennett", "Chen", "Diaz", "Evans", "Foster", "Garcia", "Hughes",
	"Iverson", "Johnson", "Kim", "Lopez", "Murray", "Nolan", "Ortiz", "Park",
	"Quincy", "Rivera", "Singh", "Turner",
}

// GenerateOptions controls synthetic dataset generation.
type GenerateOptions struct {
	Seed       int64
	FirstID    int
	TierCounts map[customer.Tier]int // optional per-tier override
}

// Generate builds the synthetic customer table. The same seed always yields
// the same table, including the probabilistic kitten/adult-cat profile draw.
func Generate(opts GenerateOptions) []customer.Customer {
	rng := rand.New(rand.NewSource(opts.Seed))
	if opts.FirstID == 0 {
		opts.FirstID = 1000
	}

	var customers []customer.Customer
	id := opts.FirstID
	for _, pop := range defaultTierPopulation {
		count := pop.count
		if override, ok := opts.TierCounts[pop.tier]; ok {
			count = override
		}
		for i := 0; i < count; i++ {
			customers = append(customers, generateOne(rng, id, pop.tier))
			id++
		}
	}

	// Shuffle so tier membership is not encoded in household key order.
	rng.Shuffle(len(customers), func(i, j int) {
		customers[i], customers[j] = customers[j], customers[i]
	})

	return customers
}

func generateOne(rng *rand.Rand, id int, tier customer.Tier) customer.Customer {
	c := customer.Customer{
		HouseholdKey:     id,
		Name:             firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		PetTransactions:  transactionsForTier(rng, tier),
		PetSpend:         round2(10 + rng.Float64()*190),
		TotalSpend:       round2(500 + rng.Float64()*7500),
		ClubPlusMember:   rng.Float64() < 0.3,
		LastPurchaseDays: 1 + rng.Intn(89),
		PhoneNumber:      fmt.Sprintf("010-%04d-%04d", 1000+rng.Intn(9000), 1000+rng.Intn(9000)),
	}
	c.RecomputePetRatio()
	c.Categories = pickCategories(rng)
	c.HouseholdSize = customer.EstimateHouseholdSize(c.TotalSpend)
	c.PetProfile = customer.EstimateProfile(c.Categories, c.PetSpend, rng)
	return c
}

// transactionsForTier draws a monthly transaction count that classifies back
// into the requested tier.
func transactionsForTier(rng *rand.Rand, tier customer.Tier) float64 {
	switch tier {
	case customer.TierOverAMonth:
		return []float64{0.5, 0.7, 0.9}[rng.Intn(3)]
	case customer.TierMonthly:
		return float64(1 + rng.Intn(2))
	case customer.TierLowFrequency:
		return 3
	case customer.TierHighFrequency:
		return 4
	case customer.TierWeekly:
		return float64(5 + rng.Intn(2))
	}
	return float64(7 + rng.Intn(4))
}

// pickCategories selects 1-3 distinct tags, weighted 40/40/20.
func pickCategories(rng *rand.Rand) []customer.CategoryTag {
	n := 1
	switch p := rng.Float64(); {
	case p < 0.4:
		n = 1
	case p < 0.8:
		n = 2
	default:
		n = 3
	}

	perm := rng.Perm(len(catalog))
	tags := make([]customer.CategoryTag, 0, n)
	for _, idx := range perm[:n] {
		tags = append(tags, catalog[idx])
	}
	return tags
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
