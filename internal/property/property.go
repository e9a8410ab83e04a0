// Package property models a single advertised listing: its attributes, its
// picture collection and the bid ledger it owns.
package property

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"housing-market/internal/costmodel"
	"housing-market/internal/ledger"
	"housing-market/internal/marketerrors"
	"housing-market/internal/models"
	"housing-market/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Listing holds the attributes shared by every property variant.
// A nil PriceAsked means "price on request".
type Listing struct {
	Address    string
	LivingArea int  `validate:"gte=0"`
	PriceAsked *int `validate:"omitempty,gt=0"`
}

// Property is an advertised garage, apartment or house.
// Address, living area and variant are fixed at construction; only the asking
// price, the pictures and the bid history change afterwards.
type Property struct {
	id         string
	address    string
	livingArea int
	variant    models.Variant

	mu         sync.RWMutex
	priceAsked *int
	pictures   []models.Picture

	bids *ledger.Ledger
}

// New validates the listing and variant and creates a property with an empty bid history.
// The ledger options control the bid processing delay and clock.
func New(l Listing, v models.Variant, opts ...ledger.Option) (*Property, error) {
	switch v.(type) {
	case models.Garage, models.Apartment, models.House:
	case nil:
		return nil, fmt.Errorf("property: %w - missing property variant", marketerrors.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("property: %w - unsupported property variant %T", marketerrors.ErrInvalidArgument, v)
	}
	if err := validate.Struct(l); err != nil {
		return nil, fmt.Errorf("property: %w - %s", marketerrors.ErrInvalidArgument, describeValidation(err))
	}
	if err := validate.Struct(v); err != nil {
		return nil, fmt.Errorf("property: %w - %s", marketerrors.ErrInvalidArgument, describeValidation(err))
	}

	return &Property{
		id:         utils.GenerateID(),
		address:    l.Address,
		livingArea: l.LivingArea,
		variant:    v,
		priceAsked: copyPrice(l.PriceAsked),
		bids:       ledger.New(opts...),
	}, nil
}

// NewGarage creates a garage listing
func NewGarage(l Listing, hasElectricity bool, opts ...ledger.Option) (*Property, error) {
	return New(l, models.Garage{HasElectricity: hasElectricity}, opts...)
}

// NewApartment creates an apartment listing
func NewApartment(l Listing, paymentVVE, floor int, opts ...ledger.Option) (*Property, error) {
	return New(l, models.Apartment{PaymentVVE: paymentVVE, Floor: floor}, opts...)
}

// NewHouse creates a house listing
func NewHouse(l Listing, housingType models.HousingType, plotArea int, opts ...ledger.Option) (*Property, error) {
	return New(l, models.House{Type: housingType, PlotArea: plotArea}, opts...)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
}

func copyPrice(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (p *Property) ID() string              { return p.id }
func (p *Property) Address() string         { return p.address }
func (p *Property) LivingArea() int         { return p.livingArea }
func (p *Property) Variant() models.Variant { return p.variant }
func (p *Property) Kind() models.Kind       { return p.variant.Kind() }

// PriceAsked returns the asking price; false means "price on request"
func (p *Property) PriceAsked() (int, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.priceAsked == nil {
		return 0, false
	}
	return *p.priceAsked, true
}

// SetPriceAsked replaces the asking price. nil puts the property on "price on request".
// No validation is applied here.
func (p *Property) SetPriceAsked(price *int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.priceAsked = copyPrice(price)
}

// PlaceBid submits an offer to the property's ledger.
// See ledger.Ledger.Submit for the acceptance rule.
func (p *Property) PlaceBid(customer models.Customer, priceOffered int, now time.Time) (bool, error) {
	accepted, err := p.bids.Submit(customer, priceOffered, now)
	if err != nil {
		return false, fmt.Errorf("place bid on %s: %w", p.id, err)
	}
	return accepted, nil
}

// Bids returns the accepted bids in acceptance order
func (p *Property) Bids() []models.Bid {
	return p.bids.Bids()
}

// HighestBid returns the currently winning bid, if any
func (p *Property) HighestBid() (models.Bid, bool) {
	return p.bids.Highest()
}

// EstimatedMonthlyCost returns the estimated monthly cost of ownership under rates.
// The second result is false when the price is on request.
func (p *Property) EstimatedMonthlyCost(rates costmodel.Rates) (int, bool) {
	return costmodel.Estimate(p.attributes(), rates)
}

// EnergyFactor returns the yearly energy cost per m2 for this property's variant
func (p *Property) EnergyFactor() float64 {
	return costmodel.EnergyFactor(p.variant)
}

func (p *Property) attributes() costmodel.Attributes {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return costmodel.Attributes{
		PriceAsked: copyPrice(p.priceAsked),
		LivingArea: p.livingArea,
		Variant:    p.variant,
	}
}

// AddPicture attaches a picture to the listing
func (p *Property) AddPicture(pic models.Picture) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pictures = append(p.pictures, pic)
}

// RemovePicture detaches the first picture equal to pic and reports whether one was found
func (p *Property) RemovePicture(pic models.Picture) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.pictures, pic)
	if i < 0 {
		return false
	}
	p.pictures = slices.Delete(p.pictures, i, i+1)
	return true
}

// Pictures returns a copy of the attached pictures
func (p *Property) Pictures() []models.Picture {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.pictures)
}
