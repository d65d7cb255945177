package customer

import (
	"math/rand"
	"strings"
)

// Pet profile labels produced by EstimateProfile.
const (
	ProfileSmallDog     = "Small Dog"
	ProfileMediumDog    = "Medium Dog"
	ProfileLargeDog     = "Large Dog"
	ProfileKitten       = "Kitten"
	ProfileAdultCat     = "Adult Cat"
	ProfileSmallBird    = "Small Bird"
	ProfileAquariumFish = "Aquarium Fish"
	ProfileSmallMammal  = "Small Mammal"
	ProfileReptile      = "Reptile"
	ProfileOtherAnimal  = "Other Companion"
	ProfileUnknown      = "Unknown"
)

// Household size buckets produced by EstimateHouseholdSize.
const (
	Household1     = "1-person"
	Household2     = "2-person"
	Household3     = "3-person"
	Household4Plus = "4-plus-person"
)

// EstimateProfile infers a single pet profile label from a customer's
// category tags and pet spend. Groups are tested DOG before CAT before OTHER
// and the first matching group wins (first-match policy).
//
// Dog size is bucketed by spend. Cat age is mostly Adult Cat, except that a
// treats/toys subcategory draws Kitten with 30% probability from rng; inject
// a seeded source to keep the draw reproducible. A nil rng always resolves
// to Adult Cat.
func EstimateProfile(tags []CategoryTag, petSpend float64, rng *rand.Rand) string {
	for _, t := range tags {
		if t.Group != GroupDog {
			continue
		}
		switch {
		case petSpend < 30:
			return ProfileSmallDog
		case petSpend < 80:
			return ProfileMediumDog
		}
		return ProfileLargeDog
	}

	for _, t := range tags {
		if t.Group != GroupCat {
			continue
		}
		if catAgeMarker(t.Sub) && rng != nil && rng.Float64() < 0.3 {
			return ProfileKitten
		}
		return ProfileAdultCat
	}

	for _, t := range tags {
		if t.Group != GroupOther {
			continue
		}
		sub := strings.ToLower(t.Sub)
		switch {
		case strings.Contains(sub, "poultry"):
			return ProfileSmallBird
		case strings.Contains(sub, "fish"):
			return ProfileAquariumFish
		case strings.Contains(sub, "hamster"):
			return ProfileSmallMammal
		case strings.Contains(sub, "reptile"):
			return ProfileReptile
		}
		return ProfileOtherAnimal
	}

	return ProfileUnknown
}

// catAgeMarker reports whether a cat subcategory hints at a younger animal
// (treats and toys skew toward kittens in the source data).
func catAgeMarker(sub string) bool {
	s := strings.ToLower(sub)
	return strings.Contains(s, "treat") || strings.Contains(s, "toy")
}

// EstimateHouseholdSize buckets total spend into a household-size estimate.
// Boundaries are strict upper bounds: 1999 is a 1-person household, 2000 is
// a 2-person household.
func EstimateHouseholdSize(totalSpend float64) string {
	switch {
	case totalSpend < 2000:
		return Household1
	case totalSpend < 4000:
		return Household2
	case totalSpend < 6000:
		return Household3
	}
	return Household4Plus
}
