package main

import (
	"fmt"
	"os"

	"housing-market/internal/config"
	"housing-market/internal/market"
	"housing-market/internal/metrics"
	"housing-market/internal/models"
	"housing-market/internal/property"
	"housing-market/internal/repository"
	"housing-market/internal/server"
	"housing-market/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	repo := repository.NewMemoryRepo()

	marketSvc := market.NewMarket(repo,
		market.WithInterestRate(cfg.Market.InterestRate),
		market.WithProcessingDelay(cfg.Market.BidProcessingDelay),
		market.WithMetrics(metrics.New(registry)),
	)

	if cfg.Market.SeedListings {
		if err := prepopulateListings(marketSvc); err != nil {
			utils.Fatal("failed to seed listings", map[string]any{"error": err.Error()})
		}
	}

	router := server.SetupRouter(marketSvc, registry)

	utils.Info("starting housing market server", map[string]any{
		"addr":          cfg.Addr(),
		"interest_rate": cfg.Market.InterestRate,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateListings advertises a few sample properties
func prepopulateListings(m *market.Market) error {
	price := func(p int) *int { return &p }

	samples := []struct {
		listing property.Listing
		variant models.Variant
	}{
		{property.Listing{Address: "Hoogstraat 12, Breda", LivingArea: 18, PriceAsked: price(35000)}, models.Garage{HasElectricity: true}},
		{property.Listing{Address: "Haagweg 301, Breda", LivingArea: 85, PriceAsked: price(275000)}, models.Apartment{PaymentVVE: 160, Floor: 3}},
		{property.Listing{Address: "Ginnekenweg 4, Breda", LivingArea: 100, PriceAsked: price(300000)}, models.House{Type: models.Terraced, PlotArea: 200}},
		{property.Listing{Address: "Bredaseweg 88, Teteringen", LivingArea: 180}, models.House{Type: models.Detached, PlotArea: 650}},
	}

	props := make([]*property.Property, 0, len(samples))
	for _, s := range samples {
		p, err := m.NewProperty(s.listing, s.variant)
		if err != nil {
			return err
		}
		props = append(props, p)
	}
	return m.Advertise(props...)
}
