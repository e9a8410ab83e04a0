package ledger

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"housing-market/internal/marketerrors"
	"housing-market/internal/models"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

var (
	henk = models.Customer{Name: "Henk", Email: "henk@example.com"}
	anne = models.Customer{Name: "Anne", Email: "anne@example.com"}
)

// Helper to create a ledger without processing delay
func newInstantLedger() *Ledger {
	return New(WithProcessingDelay(0))
}

func TestLedger_Submit(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name         string
		seed         []int
		price        int
		wantAccepted bool
		wantErr      error
		wantLen      int
	}{
		{name: "first_bid", price: 100, wantAccepted: true, wantLen: 1},
		{name: "first_bid_of_one", price: 1, wantAccepted: true, wantLen: 1},
		{name: "higher_bid", seed: []int{100}, price: 101, wantAccepted: true, wantLen: 2},
		{name: "equal_bid_rejected", seed: []int{100}, price: 100, wantAccepted: false, wantLen: 1},
		{name: "lower_bid_rejected", seed: []int{100}, price: 99, wantAccepted: false, wantLen: 1},
		{name: "zero_price", price: 0, wantErr: marketerrors.ErrInvalidArgument, wantLen: 0},
		{name: "negative_price", price: -1, wantErr: marketerrors.ErrInvalidArgument, wantLen: 0},
		{name: "negative_price_after_bids", seed: []int{100, 200}, price: -500, wantErr: marketerrors.ErrInvalidArgument, wantLen: 2},
		{name: "zero_price_after_bids", seed: []int{100}, price: 0, wantErr: marketerrors.ErrInvalidArgument, wantLen: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newInstantLedger()
			for _, p := range tc.seed {
				accepted, err := l.Submit(henk, p, now)
				require.NoError(t, err)
				require.True(t, accepted)
			}

			accepted, err := l.Submit(anne, tc.price, now)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.wantAccepted, accepted)
			require.Equal(t, tc.wantLen, l.Len())
		})
	}
}

func TestLedger_LowerBidNotAccepted(t *testing.T) {
	t.Parallel()

	l := newInstantLedger()
	now := time.Now().UTC()

	for _, offer := range []struct {
		customer models.Customer
		price    int
	}{{henk, 500000}, {anne, 510000}, {henk, 505000}} {
		_, err := l.Submit(offer.customer, offer.price, now)
		require.NoError(t, err)
	}

	bids := l.Bids()
	require.Len(t, bids, 2)
	require.Equal(t, 500000, bids[0].PriceOffered)
	require.Equal(t, henk, bids[0].Customer)
	require.Equal(t, 510000, bids[1].PriceOffered)
	require.Equal(t, anne, bids[1].Customer)
	require.NotEqual(t, bids[0].BidID, bids[1].BidID)

	highest, ok := l.Highest()
	require.True(t, ok)
	require.Equal(t, 510000, highest.PriceOffered)
}

// accepted prices must equal the strict running maxima of the submitted sequence
func TestLedger_AcceptsOnlyRunningMaxima(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	for round := 0; round < 50; round++ {
		l := newInstantLedger()
		var want []int
		running := 0

		for i := 0; i < 40; i++ {
			p := 1 + rng.Intn(1000)
			accepted, err := l.Submit(henk, p, now)
			require.NoError(t, err)
			require.Equal(t, p > running, accepted, "round %d, offer %d of %d", round, i, p)
			if p > running {
				running = p
				want = append(want, p)
			}
		}

		bids := l.Bids()
		require.Len(t, bids, len(want))
		for i, b := range bids {
			require.Equal(t, want[i], b.PriceOffered)
			if i > 0 {
				require.Greater(t, b.PriceOffered, bids[i-1].PriceOffered)
			}
		}
	}
}

func TestLedger_RecordsTimeAndCustomer(t *testing.T) {
	t.Parallel()

	l := newInstantLedger()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	accepted, err := l.Submit(anne, 250000, at)
	require.NoError(t, err)
	require.True(t, accepted)

	bids := l.Bids()
	require.Len(t, bids, 1)
	require.Equal(t, at, bids[0].TimeOfBid)
	require.Equal(t, anne, bids[0].Customer)
	require.NotEmpty(t, bids[0].BidID)
}

func TestLedger_BidsIsSnapshot(t *testing.T) {
	t.Parallel()

	l := newInstantLedger()
	_, err := l.Submit(henk, 100, time.Now())
	require.NoError(t, err)

	bids := l.Bids()
	bids[0].PriceOffered = 1

	require.Equal(t, 1, l.Len())
	require.Equal(t, 100, l.Bids()[0].PriceOffered)

	_, ok := New().Highest()
	require.False(t, ok)
	require.Empty(t, New().Bids())
}

func TestLedger_AcceptanceWaitsForProcessingDelay(t *testing.T) {
	t.Parallel()

	mock := clock.NewMock()
	l := New(WithClock(mock), WithProcessingDelay(time.Second))

	type submitResult struct {
		accepted bool
		err      error
	}
	done := make(chan submitResult, 1)
	go func() {
		accepted, err := l.Submit(henk, 100, mock.Now())
		done <- submitResult{accepted: accepted, err: err}
	}()

	select {
	case <-done:
		t.Fatal("accepted offer returned before the processing delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	var res submitResult
	require.Eventually(t, func() bool {
		mock.Add(time.Second)
		select {
		case res = <-done:
			return true
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, res.err)
	require.True(t, res.accepted)

	// a rejected offer returns without waiting on the clock
	accepted, err := l.Submit(anne, 50, mock.Now())
	require.NoError(t, err)
	require.False(t, accepted)
}

func TestLedger_RealClockDelay(t *testing.T) {
	t.Parallel()

	l := New(WithProcessingDelay(20 * time.Millisecond))

	start := time.Now()
	accepted, err := l.Submit(henk, 100, start)
	require.NoError(t, err)
	require.True(t, accepted)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestLedger_ConcurrentSubmits(t *testing.T) {
	t.Parallel()

	l := newInstantLedger()

	const submitters = 100
	errs := make(chan error, submitters)

	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			c := models.Customer{Name: fmt.Sprintf("user-%d", i)}
			_, err := l.Submit(c, 1000+(i*7)%100, time.Now())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	bids := l.Bids()
	require.NotEmpty(t, bids)
	for i := 1; i < len(bids); i++ {
		require.Greater(t, bids[i].PriceOffered, bids[i-1].PriceOffered)
	}
}
