package property

import (
	"fmt"
	"strings"

	"housing-market/internal/costmodel"
	"housing-market/internal/models"
)

const priceOnRequest = "prijs op aanvraag"

var kindTitles = map[models.Kind]string{
	models.KindGarage:    "Garage",
	models.KindApartment: "Apartment",
	models.KindHouse:     "House",
}

// Describe renders the listing as advertisement text
func (p *Property) Describe(rates costmodel.Rates) string {
	var b strings.Builder

	price := priceOnRequest
	if v, ok := p.PriceAsked(); ok {
		price = fmt.Sprint(v)
	}
	monthly := "unknown"
	if v, ok := p.EstimatedMonthlyCost(rates); ok {
		monthly = fmt.Sprint(v)
	}

	fmt.Fprintf(&b, "%s at %s price: %s living area: %d", kindTitles[p.Kind()], p.address, price, p.livingArea)
	fmt.Fprintf(&b, "\n\testimated monthly costs (mortgage, energy, maintenance): %s", monthly)

	switch v := p.variant.(type) {
	case models.Garage:
		if v.HasElectricity {
			b.WriteString("\n\t with electricity!")
		}
	case models.Apartment:
		fmt.Fprintf(&b, "\n\tlocated at %s floor", ordinal(v.Floor))
	case models.House:
		fmt.Fprintf(&b, "\n\tthis %s house is situated at %d m2 plot area", strings.ToLower(string(v.Type)), v.PlotArea)
	}

	return b.String()
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
