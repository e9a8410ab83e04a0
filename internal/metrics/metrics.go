package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "housing_market"

// Bid outcomes used as label values
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
)

// Metrics groups the market's Prometheus collectors
type Metrics struct {
	bidsSubmitted        *prometheus.CounterVec
	propertiesAdvertised prometheus.Counter
	interestRate         prometheus.Gauge
}

// New registers the market collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		bidsSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_submitted_total",
			Help:      "Bids submitted, by outcome.",
		}, []string{"outcome"}),
		propertiesAdvertised: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "properties_advertised_total",
			Help:      "Properties added to the catalog.",
		}),
		interestRate: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interest_rate",
			Help:      "Interest rate currently used for monthly cost estimates.",
		}),
	}
}

// NewNop returns Metrics backed by a private registry that is never exposed
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) BidSubmitted(outcome string) {
	m.bidsSubmitted.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PropertiesAdvertised(n int) {
	m.propertiesAdvertised.Add(float64(n))
}

func (m *Metrics) InterestRateChanged(rate float64) {
	m.interestRate.Set(rate)
}

// Handler serves the collectors of g in the Prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
