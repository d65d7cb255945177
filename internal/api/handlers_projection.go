package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpaws/petcrm/internal/dataset"
	"github.com/brightpaws/petcrm/internal/projection"
)

// upgradePathView is one row of the upgrade-path table with its source-tier
// population attached.
type upgradePathView struct {
	Path       string            `json:"path"`
	Name       string            `json:"name"`
	SourceTier string            `json:"source_tier"`
	Multiplier float64           `json:"multiplier"`
	Stats      dataset.PeerStats `json:"source_tier_stats"`
}

func (h *Handlers) upgradePaths() []upgradePathView {
	out := make([]upgradePathView, 0, 6)
	for _, sc := range projection.DefaultScenarios() {
		out = append(out, upgradePathView{
			Path:       sc.SourceTier.String(),
			Name:       sc.Name,
			SourceTier: sc.SourceTier.String(),
			Multiplier: sc.Multiplier,
			Stats:      h.session.Data.TierStats(sc.SourceTier),
		})
	}
	return out
}

// HandleUpgradePaths lists the predefined upgrade paths.
func (h *Handlers) HandleUpgradePaths(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"paths": h.upgradePaths(),
	})
}

// HandleUpgradePath returns one upgrade path keyed by its source tier,
// with the candidate spend histogram and the category-change reference.
func (h *Handlers) HandleUpgradePath(w http.ResponseWriter, r *http.Request) {
	pathParam := chi.URLParam(r, "path")
	for _, sc := range projection.DefaultScenarios() {
		if sc.SourceTier.String() != pathParam {
			continue
		}
		candidates := h.session.Data.ByTier(sc.SourceTier)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"path": upgradePathView{
				Path:       sc.SourceTier.String(),
				Name:       sc.Name,
				SourceTier: sc.SourceTier.String(),
				Multiplier: sc.Multiplier,
				Stats:      h.session.Data.TierStats(sc.SourceTier),
			},
			"spend_distribution": dataset.SpendDistribution(candidates),
			"category_changes":   h.session.Data.CategoryChangeTable(),
		})
		return
	}
	respondError(w, http.StatusNotFound, fmt.Sprintf("unknown upgrade path %q", pathParam))
}

// projectionRequest carries the two slider parameters.
type projectionRequest struct {
	ConversionRate int `json:"conversion_rate"`
	HorizonMonths  int `json:"horizon_months"`
}

// HandleProjection computes the revenue scenarios for the requested
// conversion rate and horizon. Out-of-range parameters are rejected with
// the range text rather than clamped.
func (h *Handlers) HandleProjection(w http.ResponseWriter, r *http.Request) {
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := projection.ValidateParams(req.ConversionRate, req.HorizonMonths); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := projection.Project(h.session.Data, projection.DefaultScenarios(),
		req.ConversionRate, req.HorizonMonths)
	respondJSON(w, http.StatusOK, result)
}
