package server

import (
	"housing-market/internal/market"
	"housing-market/internal/metrics"
	handler "housing-market/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.Market, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)

	properties := router.Group("/properties")
	{
		properties.POST("", marketHandler.AdvertiseHandler)
		properties.GET("", marketHandler.SearchHandler)
		properties.GET("/:property_id", marketHandler.GetPropertyHandler)
		properties.PUT("/:property_id/price", marketHandler.SetPriceHandler)
		properties.POST("/:property_id/bids", marketHandler.PlaceBidHandler)
		properties.GET("/:property_id/bids", marketHandler.GetBidsHandler)
		properties.GET("/:property_id/monthly-cost", marketHandler.GetMonthlyCostHandler)
		properties.POST("/:property_id/pictures", marketHandler.AddPictureHandler)
		properties.DELETE("/:property_id/pictures", marketHandler.RemovePictureHandler)
	}

	settings := router.Group("/settings")
	{
		settings.GET("/interest-rate", marketHandler.GetInterestRateHandler)
		settings.PUT("/interest-rate", marketHandler.SetInterestRateHandler)
	}

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}

	return router
}
