package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"housing-market/internal/costmodel"
	"housing-market/internal/marketerrors"
	"housing-market/internal/models"
	"housing-market/internal/property"
	"housing-market/services/market/helpers"
	"housing-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=market_handler.go -destination=mock_service.go -package=handler

type MarketServiceInterface interface {
	NewProperty(l property.Listing, v models.Variant) (*property.Property, error)
	Advertise(props ...*property.Property) error
	Search(minPrice, maxPrice int) ([]*property.Property, error)
	GetProperty(propertyID string) (*property.Property, error)
	PlaceBid(propertyID string, customer models.Customer, price int) (bool, error)
	GetBids(propertyID string) ([]models.Bid, error)
	EstimatedMonthlyCost(propertyID string) (int, bool, error)
	SetPriceAsked(propertyID string, price *int) error
	AddPicture(propertyID string, pic models.Picture) error
	RemovePicture(propertyID string, pic models.Picture) (bool, error)
	InterestRate() float64
	SetInterestRate(rate float64) error
	Rates() costmodel.Rates
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// respondError maps err to a status, writes it and logs it at warn level
func respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// AdvertiseHandler handles POST /properties
func (h *MarketHandler) AdvertiseHandler(c *gin.Context) {
	var req helpers.AdvertiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdvertiseHandler", err)
		return
	}

	variant, err := req.Variant()
	if err != nil {
		respondError(c, "AdvertiseHandler", err, map[string]any{"kind": req.Kind})
		return
	}

	p, err := h.service.NewProperty(req.Listing(), variant)
	if err != nil {
		respondError(c, "AdvertiseHandler", err, map[string]any{"kind": req.Kind})
		return
	}
	if err := h.service.Advertise(p); err != nil {
		respondError(c, "AdvertiseHandler", err, map[string]any{"property_id": p.ID()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewPropertyResponse(p, h.service.Rates()), "property advertised successfully")
	helpers.LogSuccess("AdvertiseHandler", "property advertised successfully", map[string]any{
		"property_id": p.ID(),
		"kind":        p.Kind(),
		"address":     p.Address(),
	})
}

// SearchHandler handles GET /properties?min_price=&max_price=
func (h *MarketHandler) SearchHandler(c *gin.Context) {
	minPrice, err := queryInt(c, "min_price", 0)
	if err != nil {
		respondError(c, "SearchHandler", err, nil)
		return
	}
	maxPrice, err := queryInt(c, "max_price", math.MaxInt)
	if err != nil {
		respondError(c, "SearchHandler", err, nil)
		return
	}

	props, err := h.service.Search(minPrice, maxPrice)
	if err != nil {
		respondError(c, "SearchHandler", err, map[string]any{"min_price": minPrice, "max_price": maxPrice})
		return
	}

	rates := h.service.Rates()
	resp := make([]helpers.PropertyResponse, 0, len(props))
	for _, p := range props {
		resp = append(resp, helpers.NewPropertyResponse(p, rates))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "properties retrieved successfully")
	helpers.LogSuccess("SearchHandler", "properties retrieved successfully", map[string]any{
		"min_price": minPrice,
		"max_price": maxPrice,
		"count":     len(resp),
	})
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w - %s must be an integer", marketerrors.ErrInvalidArgument, key)
	}
	return v, nil
}

// GetPropertyHandler handles GET /properties/:property_id
func (h *MarketHandler) GetPropertyHandler(c *gin.Context) {
	propertyID := c.Param("property_id")
	p, err := h.service.GetProperty(propertyID)
	if err != nil {
		respondError(c, "GetPropertyHandler", err, map[string]any{"property_id": propertyID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPropertyResponse(p, h.service.Rates()), "property retrieved successfully")
}

// SetPriceHandler handles PUT /properties/:property_id/price
func (h *MarketHandler) SetPriceHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	var req helpers.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetPriceHandler", err)
		return
	}

	if err := h.service.SetPriceAsked(propertyID, req.PriceAsked); err != nil {
		respondError(c, "SetPriceHandler", err, map[string]any{"property_id": propertyID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, req, "asking price updated successfully")
	helpers.LogSuccess("SetPriceHandler", "asking price updated successfully", map[string]any{
		"property_id":      propertyID,
		"price_on_request": req.PriceAsked == nil,
	})
}

// PlaceBidHandler handles POST /properties/:property_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	accepted, err := h.service.PlaceBid(propertyID, req.Customer(), req.Price)
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{"property_id": propertyID, "price": req.Price})
		return
	}

	resp := helpers.PlaceBidResponse{
		PropertyID:   propertyID,
		Accepted:     accepted,
		PriceOffered: req.Price,
		CustomerName: req.Name,
	}
	if !accepted {
		err := fmt.Errorf("%w - %d does not exceed the highest bid", marketerrors.ErrBidNotAccepted, req.Price)
		respondError(c, "PlaceBidHandler", err, map[string]any{"property_id": propertyID, "price": req.Price})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"property_id": propertyID,
		"customer":    req.Name,
		"price":       req.Price,
	})
}

// GetBidsHandler handles GET /properties/:property_id/bids
func (h *MarketHandler) GetBidsHandler(c *gin.Context) {
	propertyID := c.Param("property_id")
	bids, err := h.service.GetBids(propertyID)
	if err != nil {
		respondError(c, "GetBidsHandler", err, map[string]any{"property_id": propertyID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"property_id": propertyID,
		"count":       len(bids),
	})
}

// GetMonthlyCostHandler handles GET /properties/:property_id/monthly-cost
func (h *MarketHandler) GetMonthlyCostHandler(c *gin.Context) {
	propertyID := c.Param("property_id")
	cost, ok, err := h.service.EstimatedMonthlyCost(propertyID)
	if err != nil {
		respondError(c, "GetMonthlyCostHandler", err, map[string]any{"property_id": propertyID})
		return
	}

	resp := helpers.MonthlyCostResponse{
		PropertyID:     propertyID,
		InterestRate:   h.service.InterestRate(),
		PriceOnRequest: !ok,
	}
	if ok {
		resp.EstimatedMonthlyCost = &cost
	}

	utils.JSONResponse(c, http.StatusOK, resp, "monthly cost estimated successfully")
}

// AddPictureHandler handles POST /properties/:property_id/pictures
func (h *MarketHandler) AddPictureHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	var req helpers.PictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddPictureHandler", err)
		return
	}

	if err := h.service.AddPicture(propertyID, req.Picture()); err != nil {
		respondError(c, "AddPictureHandler", err, map[string]any{"property_id": propertyID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, req.Picture(), "picture added successfully")
	helpers.LogSuccess("AddPictureHandler", "picture added successfully", map[string]any{
		"property_id": propertyID,
		"image_url":   req.ImageURL,
	})
}

// RemovePictureHandler handles DELETE /properties/:property_id/pictures
func (h *MarketHandler) RemovePictureHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	var req helpers.PictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RemovePictureHandler", err)
		return
	}

	removed, err := h.service.RemovePicture(propertyID, req.Picture())
	if err != nil {
		respondError(c, "RemovePictureHandler", err, map[string]any{"property_id": propertyID})
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, nil, "picture not found")
		return
	}

	utils.JSONResponse(c, http.StatusOK, req.Picture(), "picture removed successfully")
}

// GetInterestRateHandler handles GET /settings/interest-rate
func (h *MarketHandler) GetInterestRateHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.InterestRateResponse{InterestRate: h.service.InterestRate()}, "interest rate retrieved successfully")
}

// SetInterestRateHandler handles PUT /settings/interest-rate
func (h *MarketHandler) SetInterestRateHandler(c *gin.Context) {
	var req helpers.InterestRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetInterestRateHandler", err)
		return
	}

	if err := h.service.SetInterestRate(*req.InterestRate); err != nil {
		respondError(c, "SetInterestRateHandler", err, map[string]any{"interest_rate": *req.InterestRate})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.InterestRateResponse{InterestRate: *req.InterestRate}, "interest rate updated successfully")
}
