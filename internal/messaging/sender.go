package messaging

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brightpaws/petcrm/internal/customer"
	"github.com/google/uuid"
)

// DefaultSuccessRate is the simulated delivery success probability.
const DefaultSuccessRate = 0.95

// Sender simulates message delivery and appends every attempt to the log.
type Sender struct {
	personalizer *Personalizer
	log          Log
	rng          *rand.Rand
	successRate  float64
	now          func() time.Time
}

// NewSender wires a sender. rng drives the success/failure draw; inject a
// seeded source for reproducible tests. A nil rng always succeeds.
func NewSender(log Log, rng *rand.Rand) *Sender {
	return &Sender{
		personalizer: NewPersonalizer(),
		log:          log,
		rng:          rng,
		successRate:  DefaultSuccessRate,
		now:          time.Now,
	}
}

// SetSuccessRate overrides the simulated delivery success probability.
func (s *Sender) SetSuccessRate(rate float64) {
	s.successRate = rate
}

// Personalizer exposes the underlying template engine for validation calls.
func (s *Sender) Personalizer() *Personalizer {
	return s.personalizer
}

// Send records one simulated delivery of already-personalized content.
// The outcome is drawn from the weighted random source; failures are
// recorded and surfaced, never retried.
func (s *Sender) Send(c customer.Customer, content, messageType string) (Record, error) {
	status := StatusSuccess
	if s.rng != nil && s.rng.Float64() >= s.successRate {
		status = StatusFailed
	}

	rec := Record{
		ID:          uuid.NewString(),
		CustomerID:  c.HouseholdKey,
		Name:        c.Name,
		PhoneNumber: customer.MaskPhoneNumber(c.PhoneNumber),
		MessageType: messageType,
		Content:     content,
		SentAt:      s.now(),
		Status:      status,
	}

	if err := s.log.Append(rec); err != nil {
		return rec, fmt.Errorf("append message log: %w", err)
	}
	return rec, nil
}

// SendBatch personalizes and sends the template to each customer in input
// order. Personalization failures are isolated per customer and reported in
// the summary; every successfully personalized message produces exactly one
// log record, success or failure.
func (s *Sender) SendBatch(customers []customer.Customer, template, messageType string) (BatchResult, error) {
	res := BatchResult{Total: len(customers)}

	for _, c := range customers {
		content, err := s.personalizer.Personalize(template, c)
		if err != nil {
			res.Skipped = append(res.Skipped, BatchError{CustomerID: c.HouseholdKey, Reason: err.Error()})
			continue
		}

		rec, err := s.Send(c, content, messageType)
		if err != nil {
			return res, err
		}
		res.Records = append(res.Records, rec)
		if rec.Status == StatusSuccess {
			res.Succeeded++
		} else {
			res.Failed++
		}
	}

	return res, nil
}
