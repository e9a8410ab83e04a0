package market

import (
	"fmt"
	"io"
	"strings"

	"housing-market/internal/models"
	"housing-market/internal/property"
)

// ShowAdvertisements writes a listing of props to w, optionally with their bid history
func (m *Market) ShowAdvertisements(w io.Writer, props []*property.Property, includeBids bool) error {
	rates := m.Rates()

	var b strings.Builder
	b.WriteString("All advertisements:\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	for _, p := range props {
		b.WriteString(p.Describe(rates) + "\n")
		if includeBids {
			bids := p.Bids()
			lines := make([]string, 0, len(bids))
			for _, bid := range bids {
				lines = append(lines, formatBid(bid))
			}
			b.WriteString("\t\t" + strings.Join(lines, "\n\t\t") + "\n")
		}
		b.WriteString(strings.Repeat("-", 80) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("market: failed to write advertisements: %w", err)
	}
	return nil
}

func formatBid(b models.Bid) string {
	return fmt.Sprintf("%d by %s <%s> at %s", b.PriceOffered, b.Customer.Name, b.Customer.Email, b.TimeOfBid.Format("2006-01-02T15:04:05Z07:00"))
}
