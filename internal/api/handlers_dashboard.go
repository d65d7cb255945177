package api

import (
	"net/http"

	"github.com/brightpaws/petcrm/internal/dataset"
)

// HandleDashboardOverview returns the headline metrics, the tier
// distribution, the top spenders and the upgrade-candidate block in one
// call.
func (h *Handlers) HandleDashboardOverview(w http.ResponseWriter, r *http.Request) {
	store := h.session.Data
	candidates := store.UpgradeCandidates()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"totals":            store.Totals(),
		"tier_distribution": store.TierCounts(),
		"top_spenders":      viewsOf(store.TopBySpend(10)),
		"upgrade_candidates": map[string]interface{}{
			"count":              len(candidates),
			"spend_distribution": dataset.SpendDistribution(candidates),
			"stats":              dataset.PeerStatsFor(candidates),
		},
	})
}
