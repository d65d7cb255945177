// Package messaging personalizes campaign templates and simulates sending
// them. No real provider is called: delivery outcomes are drawn from an
// injected random source and recorded in the session message log.
package messaging

import (
	"fmt"
	"time"
)

// Status is the simulated delivery outcome of one send.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Record is one immutable entry in the session message log.
type Record struct {
	ID          string    `json:"id"`
	CustomerID  int       `json:"customer_id"`
	Name        string    `json:"customer_name"`
	PhoneNumber string    `json:"phone_number"` // masked for display
	MessageType string    `json:"message_type"`
	Content     string    `json:"message_content"`
	SentAt      time.Time `json:"send_time"`
	Status      Status    `json:"status"`
}

// MissingFieldError reports a template placeholder with no corresponding
// field on the customer record. Personalization failures are isolated per
// customer and never abort a batch.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("messaging: template references unknown field %q", e.Field)
}

// BatchError identifies one customer whose message could not be
// personalized.
type BatchError struct {
	CustomerID int    `json:"customer_id"`
	Reason     string `json:"reason"`
}

// BatchResult is the partial-failure summary of a batch send.
type BatchResult struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"` // simulated delivery failures, recorded in the log
	Skipped   []BatchError `json:"skipped,omitempty"`
	Records   []Record     `json:"records"`
}
