// Package session ties one simulated dataset to one message log. Everything
// a request handler touches hangs off the session; there are no package
// globals, so tests can run isolated sessions side by side.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/brightpaws/petcrm/internal/dataset"
	"github.com/brightpaws/petcrm/internal/messaging"
)

// Session owns the in-memory customer dataset and the message log for one
// server run. The dataset is regenerated from the seed on every start and is
// never persisted.
type Session struct {
	ID        string
	CreatedAt time.Time
	Data      *dataset.Store
	Messages  messaging.Log
	Sender    *messaging.Sender
}

// Options configures a new session.
type Options struct {
	ID          string // empty means a fresh uuid
	Seed        int64
	FirstID     int
	Log         messaging.Log // nil means in-memory
	SendRNG     *rand.Rand    // nil means sends always succeed
	SuccessRate float64       // 0 means the sender default
}

// NewID returns a session identifier. Exposed so callers that key an
// external log backend by session can mint the id before building the
// session itself.
func NewID() string {
	return uuid.NewString()
}

// New builds a session with a freshly generated dataset.
func New(opts Options) *Session {
	id := opts.ID
	if id == "" {
		id = NewID()
	}

	log := opts.Log
	if log == nil {
		log = messaging.NewMemoryLog()
	}

	sender := messaging.NewSender(log, opts.SendRNG)
	if opts.SuccessRate > 0 {
		sender.SetSuccessRate(opts.SuccessRate)
	}

	store := dataset.NewStoreFromRecords(dataset.Generate(dataset.GenerateOptions{
		Seed:    opts.Seed,
		FirstID: opts.FirstID,
	}))

	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Data:      store,
		Messages:  log,
		Sender:    sender,
	}
}
