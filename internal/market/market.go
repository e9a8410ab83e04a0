package market

import (
	"fmt"
	"math"
	"sync"
	"time"

	"housing-market/internal/costmodel"
	"housing-market/internal/ledger"
	"housing-market/internal/marketerrors"
	"housing-market/internal/metrics"
	"housing-market/internal/models"
	"housing-market/internal/property"
	"housing-market/internal/repository"
	"housing-market/utils"

	"github.com/benbjohnson/clock"
	"github.com/samber/lo"
)

// Option configures a Market
type Option func(*Market)

// WithClock sets the clock used to timestamp bids and wait out processing delays
func WithClock(c clock.Clock) Option {
	return func(m *Market) { m.clock = c }
}

// WithProcessingDelay sets the bid processing delay of properties created by the market
func WithProcessingDelay(d time.Duration) Option {
	return func(m *Market) { m.delay = d }
}

// WithInterestRate sets the initial interest rate.
// A negative, NaN or infinite rate is ignored and the default rate is kept.
func WithInterestRate(rate float64) Option {
	return func(m *Market) { m.interestRate = rate }
}

// WithMetrics sets the collectors the market reports to
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Market) { m.metrics = mt }
}

// Market is the catalog of advertised properties together with the
// market-wide interest rate used for cost estimates
type Market struct {
	repo    repository.Catalog
	clock   clock.Clock
	delay   time.Duration
	metrics *metrics.Metrics

	mu           sync.RWMutex
	interestRate float64
}

// NewMarket creates a new Market instance
func NewMarket(repo repository.Catalog, opts ...Option) *Market {
	m := &Market{
		repo:         repo,
		clock:        clock.New(),
		delay:        ledger.DefaultProcessingDelay,
		interestRate: costmodel.DefaultInterestRate,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !validInterestRate(m.interestRate) {
		utils.Warn("market: ignoring invalid initial interest rate", map[string]any{
			"interest_rate": fmt.Sprint(m.interestRate),
			"default":       costmodel.DefaultInterestRate,
		})
		m.interestRate = costmodel.DefaultInterestRate
	}
	if m.metrics == nil {
		m.metrics = metrics.NewNop()
	}
	m.metrics.InterestRateChanged(m.interestRate)
	return m
}

// NewProperty builds a property whose bids follow the market's clock and processing delay.
// The property is not advertised.
func (m *Market) NewProperty(l property.Listing, v models.Variant) (*property.Property, error) {
	p, err := property.New(l, v, ledger.WithClock(m.clock), ledger.WithProcessingDelay(m.delay))
	if err != nil {
		return nil, fmt.Errorf("market: failed to create property: %w", err)
	}
	return p, nil
}

// Advertise appends properties to the catalog in the given order
func (m *Market) Advertise(props ...*property.Property) error {
	if err := m.repo.AddProperties(props...); err != nil {
		return fmt.Errorf("market: failed to advertise properties: %w", err)
	}
	m.metrics.PropertiesAdvertised(len(props))
	return nil
}

// Search returns the properties whose asking price lies in [minPrice, maxPrice].
// Properties with the price on request never match.
func (m *Market) Search(minPrice, maxPrice int) ([]*property.Property, error) {
	return m.SearchFunc(func(p *property.Property) bool {
		price, ok := p.PriceAsked()
		return ok && price >= minPrice && price <= maxPrice
	})
}

// SearchPriced is the unbounded price search: every property with an asking price
func (m *Market) SearchPriced() ([]*property.Property, error) {
	return m.Search(0, math.MaxInt)
}

// SearchFunc returns the properties matching query, in catalog order
func (m *Market) SearchFunc(query func(*property.Property) bool) ([]*property.Property, error) {
	all, err := m.repo.ListProperties()
	if err != nil {
		return nil, fmt.Errorf("market: failed to list properties: %w", err)
	}
	return lo.Filter(all, func(p *property.Property, _ int) bool { return query(p) }), nil
}

// All returns the whole catalog in advertisement order
func (m *Market) All() ([]*property.Property, error) {
	return m.SearchFunc(func(*property.Property) bool { return true })
}

// GetProperty returns a single advertised property
func (m *Market) GetProperty(propertyID string) (*property.Property, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("market: %w - empty property ID", marketerrors.ErrInvalidArgument)
	}
	p, err := m.repo.GetProperty(propertyID)
	if err != nil {
		return nil, fmt.Errorf("market: failed to get property %s: %w", propertyID, err)
	}
	return p, nil
}

// PlaceBid offers price on behalf of customer, timestamped with the market clock.
// A bid that does not beat the current highest bid is reported as not accepted, not as an error.
func (m *Market) PlaceBid(propertyID string, customer models.Customer, price int) (bool, error) {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return false, err
	}

	accepted, err := p.PlaceBid(customer, price, m.clock.Now().UTC())
	if err != nil {
		m.metrics.BidSubmitted(metrics.OutcomeInvalid)
		return false, fmt.Errorf("market: %w", err)
	}

	fields := map[string]any{
		"property_id": propertyID,
		"customer":    customer.Name,
		"price":       price,
	}
	if !accepted {
		m.metrics.BidSubmitted(metrics.OutcomeRejected)
		utils.Debug("market: bid not accepted", fields)
		return false, nil
	}
	m.metrics.BidSubmitted(metrics.OutcomeAccepted)
	utils.Debug("market: bid accepted", fields)
	return true, nil
}

// GetBids returns the accepted bids of a property in acceptance order
func (m *Market) GetBids(propertyID string) ([]models.Bid, error) {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return p.Bids(), nil
}

// EstimatedMonthlyCost estimates a property's monthly cost with the current interest rate.
// ok is false when the property's price is on request.
func (m *Market) EstimatedMonthlyCost(propertyID string) (cost int, ok bool, err error) {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return 0, false, err
	}
	cost, ok = p.EstimatedMonthlyCost(m.Rates())
	return cost, ok, nil
}

// SetPriceAsked changes or clears (nil) a property's asking price
func (m *Market) SetPriceAsked(propertyID string, price *int) error {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return err
	}
	p.SetPriceAsked(price)
	return nil
}

// AddPicture attaches a picture to a property
func (m *Market) AddPicture(propertyID string, pic models.Picture) error {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return err
	}
	p.AddPicture(pic)
	return nil
}

// RemovePicture detaches a picture and reports whether it was attached
func (m *Market) RemovePicture(propertyID string, pic models.Picture) (bool, error) {
	p, err := m.GetProperty(propertyID)
	if err != nil {
		return false, err
	}
	return p.RemovePicture(pic), nil
}

// InterestRate returns the current market-wide interest rate
func (m *Market) InterestRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.interestRate
}

// SetInterestRate changes the interest rate used by every later estimate
func (m *Market) SetInterestRate(rate float64) error {
	if !validInterestRate(rate) {
		return fmt.Errorf("market: %w - interest rate must be a non-negative number, got %v", marketerrors.ErrInvalidArgument, rate)
	}

	m.mu.Lock()
	m.interestRate = rate
	m.mu.Unlock()

	m.metrics.InterestRateChanged(rate)
	utils.Info("market: interest rate changed", map[string]any{"interest_rate": rate})
	return nil
}

func validInterestRate(rate float64) bool {
	return rate >= 0 && !math.IsInf(rate, 0)
}

// Rates returns the cost model parameters as of now
func (m *Market) Rates() costmodel.Rates {
	return costmodel.NewRates(m.InterestRate())
}
