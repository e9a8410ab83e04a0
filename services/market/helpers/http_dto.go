package helpers

import (
	"fmt"

	"housing-market/internal/marketerrors"
	"housing-market/internal/models"
	"housing-market/internal/property"
)

// Request DTOs
type AdvertiseRequest struct {
	Kind           string `json:"kind" binding:"required,oneof=garage apartment house"`
	Address        string `json:"address"`
	LivingArea     int    `json:"living_area" binding:"gte=0"`
	PriceAsked     *int   `json:"price_asked" binding:"omitempty,gt=0"`
	HasElectricity bool   `json:"has_electricity"`
	PaymentVVE     int    `json:"payment_vve" binding:"gte=0"`
	Floor          int    `json:"floor"`
	HousingType    string `json:"housing_type" binding:"required_if=Kind house"`
	PlotArea       int    `json:"plot_area" binding:"gte=0"`
}

type PlaceBidRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Price int    `json:"price"`
}

type SetPriceRequest struct {
	PriceAsked *int `json:"price_asked"`
}

type PictureRequest struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required,url"`
}

type InterestRateRequest struct {
	InterestRate *float64 `json:"interest_rate" binding:"required"`
}

// Response DTOs
type PropertyResponse struct {
	PropertyID           string            `json:"property_id"`
	Kind                 models.Kind       `json:"kind"`
	Address              string            `json:"address"`
	LivingArea           int               `json:"living_area"`
	PriceAsked           *int              `json:"price_asked"`
	EstimatedMonthlyCost *int              `json:"estimated_monthly_cost"`
	HasElectricity       *bool             `json:"has_electricity,omitempty"`
	PaymentVVE           *int              `json:"payment_vve,omitempty"`
	Floor                *int              `json:"floor,omitempty"`
	HousingType          string            `json:"housing_type,omitempty"`
	PlotArea             *int              `json:"plot_area,omitempty"`
	Pictures             []models.Picture  `json:"pictures"`
	BidCount             int               `json:"bid_count"`
	HighestBid           *int              `json:"highest_bid"`
	Location             models.LatAndLong `json:"location"`
	Geohash              string            `json:"geohash"`
	Description          string            `json:"description"`
}

type BidResponse struct {
	BidID         string `json:"bid_id"`
	PriceOffered  int    `json:"price_offered"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	TimeOfBid     string `json:"time_of_bid"`
}

type PlaceBidResponse struct {
	PropertyID   string `json:"property_id"`
	Accepted     bool   `json:"accepted"`
	PriceOffered int    `json:"price_offered"`
	CustomerName string `json:"customer_name"`
}

type MonthlyCostResponse struct {
	PropertyID           string  `json:"property_id"`
	InterestRate         float64 `json:"interest_rate"`
	EstimatedMonthlyCost *int    `json:"estimated_monthly_cost"`
	PriceOnRequest       bool    `json:"price_on_request"`
}

type InterestRateResponse struct {
	InterestRate float64 `json:"interest_rate"`
}

// Listing returns the attributes shared by every property kind
func (r AdvertiseRequest) Listing() property.Listing {
	return property.Listing{
		Address:    r.Address,
		LivingArea: r.LivingArea,
		PriceAsked: r.PriceAsked,
	}
}

// Variant returns the kind-specific attributes of the request
func (r AdvertiseRequest) Variant() (models.Variant, error) {
	switch models.Kind(r.Kind) {
	case models.KindGarage:
		return models.Garage{HasElectricity: r.HasElectricity}, nil
	case models.KindApartment:
		return models.Apartment{PaymentVVE: r.PaymentVVE, Floor: r.Floor}, nil
	case models.KindHouse:
		t, err := models.ParseHousingType(r.HousingType)
		if err != nil {
			return nil, fmt.Errorf("%w - %v", marketerrors.ErrInvalidArgument, err)
		}
		return models.House{Type: t, PlotArea: r.PlotArea}, nil
	default:
		return nil, fmt.Errorf("%w - unknown property kind %q", marketerrors.ErrInvalidArgument, r.Kind)
	}
}

// Customer returns the bidding customer
func (r PlaceBidRequest) Customer() models.Customer {
	return models.Customer{Name: r.Name, Email: r.Email}
}

// Picture returns the picture described by the request
func (r PictureRequest) Picture() models.Picture {
	return models.Picture{Description: r.Description, ImageURL: r.ImageURL}
}
