package dataset

// CategoryChange is one row of the static category sales-change reference
// table backing the upgrade-opportunity view. The figures come from the
// retailer's historical tier-upgrade study; immutable within a session.
type CategoryChange struct {
	Category         string  `json:"category"`
	CurrentSales     float64 `json:"current_sales"`
	TargetSales      float64 `json:"target_sales"`
	SalesChange      float64 `json:"sales_change"`
	PercentageChange float64 `json:"percentage_change"`
}

// CategoryChanges returns the reference table, ordered by absolute sales
// change descending.
func CategoryChanges() []CategoryChange {
	return []CategoryChange{
		{Category: "BEEF", CurrentSales: 184.72, TargetSales: 1940.09, SalesChange: 1755.37, PercentageChange: 950.29},
		{Category: "SOFT DRINKS", CurrentSales: 274.54, TargetSales: 1969.70, SalesChange: 1695.16, PercentageChange: 617.45},
		{Category: "FRZN MEAT/MEAT DINNERS", CurrentSales: 196.84, TargetSales: 1530.81, SalesChange: 1333.97, PercentageChange: 677.69},
		{Category: "FROZEN PIZZA", CurrentSales: 150.69, TargetSales: 1300.70, SalesChange: 1150.01, PercentageChange: 763.16},
		{Category: "CHEESE", CurrentSales: 199.55, TargetSales: 1174.74, SalesChange: 975.19, PercentageChange: 488.69},
		{Category: "FLUID MILK PRODUCTS", CurrentSales: 220.49, TargetSales: 1050.29, SalesChange: 829.80, PercentageChange: 376.34},
		{Category: "BAG SNACKS", CurrentSales: 153.78, TargetSales: 936.82, SalesChange: 783.04, PercentageChange: 509.19},
		{Category: "BAKED BREAD/BUNS/ROLLS", CurrentSales: 179.73, TargetSales: 913.67, SalesChange: 733.94, PercentageChange: 408.36},
		{Category: "PORK", CurrentSales: 86.68, TargetSales: 806.50, SalesChange: 719.82, PercentageChange: 830.43},
		{Category: "CIGARETTES", CurrentSales: 153.59, TargetSales: 775.44, SalesChange: 621.85, PercentageChange: 404.88},
	}
}
