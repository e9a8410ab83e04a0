// Package ledger keeps the append-only bid history of a single property and
// decides which offers are accepted.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"housing-market/internal/marketerrors"
	"housing-market/internal/models"
	"housing-market/utils"

	"github.com/benbjohnson/clock"
)

// DefaultProcessingDelay is how long an accepted offer takes to process
const DefaultProcessingDelay = 100 * time.Millisecond

// Option configures a Ledger
type Option func(*Ledger)

// WithClock sets the clock used to wait out the processing delay
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) { l.clock = c }
}

// WithProcessingDelay sets the delay applied after an offer is accepted
func WithProcessingDelay(d time.Duration) Option {
	return func(l *Ledger) { l.delay = d }
}

// Ledger is a concurrency-safe, append-only record of accepted bids.
// An offer is accepted only if it is strictly higher than every earlier accepted offer.
type Ledger struct {
	mu    sync.Mutex
	bids  []models.Bid
	clock clock.Clock
	delay time.Duration
}

// New creates an empty ledger
func New(opts ...Option) *Ledger {
	l := &Ledger{
		clock: clock.New(),
		delay: DefaultProcessingDelay,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit offers priceOffered on behalf of customer at time now.
// It fails with ErrInvalidArgument for a non-positive price. Otherwise it reports
// whether the offer was accepted; a rejected offer leaves the ledger untouched.
func (l *Ledger) Submit(customer models.Customer, priceOffered int, now time.Time) (bool, error) {
	if priceOffered <= 0 {
		return false, fmt.Errorf("ledger: %w - price offered should be positive, got %d", marketerrors.ErrInvalidArgument, priceOffered)
	}

	// held through the processing delay so decisions on one ledger never interleave
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.isAccepted(priceOffered) {
		return false, nil
	}

	l.bids = append(l.bids, models.Bid{
		BidID:        utils.GenerateID(),
		PriceOffered: priceOffered,
		Customer:     customer,
		TimeOfBid:    now,
	})

	if l.delay > 0 {
		l.clock.Sleep(l.delay)
	}
	return true, nil
}

func (l *Ledger) isAccepted(priceOffered int) bool {
	highest, ok := l.highest()
	return !ok || priceOffered > highest.PriceOffered
}

// highest assumes l.mu is held. Accepted prices are strictly increasing, so it is the last bid.
func (l *Ledger) highest() (models.Bid, bool) {
	if len(l.bids) == 0 {
		return models.Bid{}, false
	}
	return l.bids[len(l.bids)-1], true
}

// Highest returns the current highest accepted bid, if any
func (l *Ledger) Highest() (models.Bid, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.highest()
}

// Bids returns a copy of the accepted bids in acceptance order
func (l *Ledger) Bids() []models.Bid {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Bid(nil), l.bids...)
}

// Len returns the number of accepted bids
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bids)
}
