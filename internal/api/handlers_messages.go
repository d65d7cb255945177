package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brightpaws/petcrm/internal/customer"
)

// sendRequest is the batch-send payload.
type sendRequest struct {
	CustomerIDs []int  `json:"customer_ids"`
	Template    string `json:"template"`
	MessageType string `json:"message_type"`
}

// HandleSendMessages personalizes and sends the template to every listed
// customer. The template is validated up front; per-customer failures are
// reported in the batch result, not as an HTTP error.
func (h *Handlers) HandleSendMessages(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Template == "" {
		respondError(w, http.StatusBadRequest, "template is required")
		return
	}
	if len(req.CustomerIDs) == 0 {
		respondError(w, http.StatusBadRequest, "customer_ids is required")
		return
	}
	if req.MessageType == "" {
		req.MessageType = "campaign"
	}

	if err := h.session.Sender.Personalizer().Validate(req.Template); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	recipients := make([]customer.Customer, 0, len(req.CustomerIDs))
	for _, id := range req.CustomerIDs {
		c, ok := h.session.Data.ByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf("customer %d not found", id))
			return
		}
		recipients = append(recipients, c)
	}

	result, err := h.session.Sender.SendBatch(recipients, req.Template, req.MessageType)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleListMessages returns the session's message log in send order.
func (h *Handlers) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	records, err := h.session.Messages.Records()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(records),
		"messages": records,
	})
}
