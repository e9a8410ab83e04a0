package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"housing-market/internal/costmodel"
	"housing-market/internal/marketerrors"
	"housing-market/internal/models"
	"housing-market/internal/property"
	"housing-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrPropertyNotFound):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, marketerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	case errors.Is(err, marketerrors.ErrBidNotAccepted):
		return http.StatusConflict, "bid not accepted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewPropertyResponse renders a property with its cost estimate under rates
func NewPropertyResponse(p *property.Property, rates costmodel.Rates) PropertyResponse {
	resp := PropertyResponse{
		PropertyID:  p.ID(),
		Kind:        p.Kind(),
		Address:     p.Address(),
		LivingArea:  p.LivingArea(),
		Pictures:    p.Pictures(),
		BidCount:    len(p.Bids()),
		Description: p.Describe(rates),
	}
	if price, ok := p.PriceAsked(); ok {
		resp.PriceAsked = &price
	}
	if cost, ok := p.EstimatedMonthlyCost(rates); ok {
		resp.EstimatedMonthlyCost = &cost
	}
	if highest, ok := p.HighestBid(); ok {
		resp.HighestBid = &highest.PriceOffered
	}
	if resp.Pictures == nil {
		resp.Pictures = []models.Picture{}
	}

	switch v := p.Variant().(type) {
	case models.Garage:
		resp.HasElectricity = &v.HasElectricity
	case models.Apartment:
		resp.PaymentVVE = &v.PaymentVVE
		resp.Floor = &v.Floor
	case models.House:
		resp.HousingType = string(v.Type)
		resp.PlotArea = &v.PlotArea
	}

	resp.Location = p.Location(nil)
	resp.Geohash = property.Geohash(resp.Location)
	return resp
}

// NewBidResponses renders bids in acceptance order
func NewBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidResponse{
			BidID:         b.BidID,
			PriceOffered:  b.PriceOffered,
			CustomerName:  b.Customer.Name,
			CustomerEmail: b.Customer.Email,
			TimeOfBid:     b.TimeOfBid.UTC().Format(time.RFC3339),
		})
	}
	return out
}
