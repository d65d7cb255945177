package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/brightpaws/petcrm/internal/insight"
	"github.com/brightpaws/petcrm/internal/recommend"
)

// HandleListCustomers returns the customer table, optionally filtered by
// frequency tier (?tier=weekly etc).
func (h *Handlers) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	store := h.session.Data

	customers := store.All()
	if tierParam := r.URL.Query().Get("tier"); tierParam != "" {
		tier, ok := customer.ParseTier(tierParam)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown tier %q", tierParam))
			return
		}
		customers = store.ByTier(tier)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(customers),
		"customers": viewsOf(customers),
	})
}

// customerFromRequest resolves the {id} URL parameter. A nil pointer means
// the response has already been written.
func (h *Handlers) customerFromRequest(w http.ResponseWriter, r *http.Request) *customer.Customer {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid customer id %q", idParam))
		return nil
	}
	c, ok := h.session.Data.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("customer %d not found", id))
		return nil
	}
	return &c
}

// HandleGetCustomer returns one customer with the in-tier peer comparison.
func (h *Handlers) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	c := h.customerFromRequest(w, r)
	if c == nil {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"customer": viewOf(*c),
		"peer_comparison": map[string]interface{}{
			"tier":  c.Tier(),
			"stats": h.session.Data.TierStats(c.Tier()),
			"ranks": h.session.Data.RanksFor(*c),
		},
	})
}

// HandleCustomerInsights runs the rule blocks against the customer's tier
// peers and returns the generated insights and marketing tips.
func (h *Handlers) HandleCustomerInsights(w http.ResponseWriter, r *http.Request) {
	c := h.customerFromRequest(w, r)
	if c == nil {
		return
	}

	peers := h.session.Data.TierStats(c.Tier())
	result, err := insight.Generate(*c, peers)
	if err != nil && !errors.Is(err, insight.ErrEmptyPeerGroup) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"customer_id":    c.HouseholdKey,
		"insights":       result.Insights,
		"marketing_tips": result.MarketingTips,
	})
}

// HandleCustomerRecommendations returns the category-driven product lists.
func (h *Handlers) HandleCustomerRecommendations(w http.ResponseWriter, r *http.Request) {
	c := h.customerFromRequest(w, r)
	if c == nil {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"customer_id":      c.HouseholdKey,
		"pet_products":     recommend.PetProducts(c.Categories),
		"related_products": recommend.RelatedProducts(c.Categories, c.TotalSpend),
		"reasons":          recommend.Reasons(c.Categories, c.TotalSpend),
	})
}
