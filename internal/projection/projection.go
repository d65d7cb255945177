// Package projection computes tier-upgrade revenue scenarios. Every path in
// the scenario table is a named transition from one frequency tier toward a
// higher-engagement state with an assumed total-spend multiplier.
package projection

import (
	"fmt"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/brightpaws/petcrm/internal/dataset"
)

// Parameter bounds for the projection sliders.
const (
	MinConversionRate = 1
	MaxConversionRate = 50
	MinHorizonMonths  = 1
	MaxHorizonMonths  = 12
)

// InvalidRangeError reports a scenario parameter outside its documented
// bounds.
type InvalidRangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("projection: %s %d outside range [%d, %d]", e.Param, e.Value, e.Min, e.Max)
}

// Scenario is one predefined upgrade path.
type Scenario struct {
	Name       string        `json:"name"`
	SourceTier customer.Tier `json:"source_tier"`
	// Multiplier is the assumed total-spend factor after a successful
	// transition; the projected uplift comes from (Multiplier - 1).
	Multiplier float64 `json:"multiplier"`
}

// DefaultScenarios returns the upgrade-path table used by the dashboard.
// Multipliers come from the retailer's historical tier-upgrade study.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Weekly -> Ultra High Frequency", SourceTier: customer.TierWeekly, Multiplier: 1.5},
		{Name: "Monthly -> Low Frequency", SourceTier: customer.TierMonthly, Multiplier: 1.1},
		{Name: "High Frequency -> Weekly", SourceTier: customer.TierHighFrequency, Multiplier: 1.3},
		{Name: "Low Frequency -> High Frequency", SourceTier: customer.TierLowFrequency, Multiplier: 1.2},
		{Name: "Over a Month -> Monthly", SourceTier: customer.TierOverAMonth, Multiplier: 1.0},
		{Name: "Ultra High Frequency VIP Retention", SourceTier: customer.TierUltraHighFrequency, Multiplier: 2.0},
	}
}

// ScenarioResult is one scenario's projected outcome.
type ScenarioResult struct {
	Scenario           string  `json:"scenario"`
	SourceTier         string  `json:"source_tier"`
	TargetCustomers    int     `json:"target_customers"`
	ConvertedCustomers float64 `json:"converted_customers"` // fractional until display
	AvgTotalSpend      float64 `json:"avg_total_spend"`
	MonthlyIncrease    float64 `json:"monthly_revenue_increase"`
	TotalIncrease      float64 `json:"total_revenue_increase"`
}

// Summary holds the derived aggregate insights, all pure arithmetic over the
// scenario totals and recomputed on every parameter change.
type Summary struct {
	BestScenario       string  `json:"best_scenario"`
	BestScenarioTotal  float64 `json:"best_scenario_total"`
	MarginalPerPercent float64 `json:"marginal_value_per_percent"` // +1% conversion
	TwelveMonthTotal   float64 `json:"twelve_month_total"`
	LifetimeValue      float64 `json:"lifetime_value"` // flat 2x heuristic
	TotalConverted     float64 `json:"total_converted_customers"`
	MonthlyAverage     float64 `json:"monthly_average_increase"`
}

// Result is the full projection response.
type Result struct {
	ConversionRate int              `json:"conversion_rate"`
	HorizonMonths  int              `json:"horizon_months"`
	Scenarios      []ScenarioResult `json:"scenarios"`
	TotalIncrease  float64          `json:"total_revenue_increase"`
	Summary        Summary          `json:"summary"`
}

// TierStatsSource supplies per-tier aggregates; *dataset.Store satisfies it.
type TierStatsSource interface {
	TierStats(tier customer.Tier) dataset.PeerStats
}

// ValidateParams checks the slider parameters against their documented
// bounds.
func ValidateParams(conversionRate, horizonMonths int) error {
	if conversionRate < MinConversionRate || conversionRate > MaxConversionRate {
		return &InvalidRangeError{Param: "conversion_rate", Value: conversionRate, Min: MinConversionRate, Max: MaxConversionRate}
	}
	if horizonMonths < MinHorizonMonths || horizonMonths > MaxHorizonMonths {
		return &InvalidRangeError{Param: "horizon_months", Value: horizonMonths, Min: MinHorizonMonths, Max: MaxHorizonMonths}
	}
	return nil
}

// ClampParams forces both parameters into range, for boundary callers that
// prefer clamping over rejection.
func ClampParams(conversionRate, horizonMonths int) (int, int) {
	return clamp(conversionRate, MinConversionRate, MaxConversionRate),
		clamp(horizonMonths, MinHorizonMonths, MaxHorizonMonths)
}

// Project computes every scenario's projected uplift over the horizon.
//
// For each scenario: converted = tierCount * rate/100 (kept fractional);
// per-customer monthly uplift = avgTotalSpend * (multiplier-1) / 12;
// total = converted * perCustomer * horizon. A source tier with zero
// customers contributes zero; the mean never divides by zero because the
// stats source guards it.
//
// Project itself is total. Range enforcement belongs to the caller via
// ValidateParams or ClampParams.
func Project(src TierStatsSource, scenarios []Scenario, conversionRate, horizonMonths int) *Result {
	res := &Result{
		ConversionRate: conversionRate,
		HorizonMonths:  horizonMonths,
		Scenarios:      make([]ScenarioResult, 0, len(scenarios)),
	}

	for _, sc := range scenarios {
		stats := src.TierStats(sc.SourceTier)

		sr := ScenarioResult{
			Scenario:        sc.Name,
			SourceTier:      sc.SourceTier.String(),
			TargetCustomers: stats.Count,
			AvgTotalSpend:   stats.MeanTotalSpend,
		}
		sr.ConvertedCustomers = float64(stats.Count) * float64(conversionRate) / 100
		perCustomer := stats.MeanTotalSpend * (sc.Multiplier - 1) / 12
		sr.MonthlyIncrease = sr.ConvertedCustomers * perCustomer
		sr.TotalIncrease = sr.MonthlyIncrease * float64(horizonMonths)

		res.TotalIncrease += sr.TotalIncrease
		res.Scenarios = append(res.Scenarios, sr)
	}

	res.Summary = summarize(res)
	return res
}

func summarize(res *Result) Summary {
	var sum Summary
	for _, sr := range res.Scenarios {
		sum.TotalConverted += sr.ConvertedCustomers
		if sr.TotalIncrease > sum.BestScenarioTotal || sum.BestScenario == "" {
			sum.BestScenario = sr.Scenario
			sum.BestScenarioTotal = sr.TotalIncrease
		}
	}
	sum.LifetimeValue = res.TotalIncrease * 2
	if res.ConversionRate > 0 {
		sum.MarginalPerPercent = res.TotalIncrease * 0.01 / (float64(res.ConversionRate) / 100)
	}
	if res.HorizonMonths > 0 {
		sum.TwelveMonthTotal = res.TotalIncrease * 12 / float64(res.HorizonMonths)
		sum.MonthlyAverage = res.TotalIncrease / float64(res.HorizonMonths)
	}
	return sum
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
