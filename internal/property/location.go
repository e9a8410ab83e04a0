package property

import (
	"math/rand/v2"

	"housing-market/internal/models"

	"github.com/mmcloughlin/geohash"
)

const (
	baseLatitude  = 51.58494229691791
	baseLongitude = 4.797559120743779
	maxJitter     = 0.1
	geohashChars  = 7
)

// Jitter returns a value in [lo, hi)
type Jitter func(lo, hi float64) float64

// RandomJitter draws uniformly from [lo, hi)
func RandomJitter(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// Location returns an approximate position for the listing: the market's base
// point shifted by up to maxJitter degrees in each direction. A nil jitter uses RandomJitter.
func (p *Property) Location(jitter Jitter) models.LatAndLong {
	if jitter == nil {
		jitter = RandomJitter
	}
	return models.LatAndLong{
		Latitude:  baseLatitude + jitter(-maxJitter, maxJitter),
		Longitude: baseLongitude + jitter(-maxJitter, maxJitter),
	}
}

// Geohash encodes a location at roughly 150m precision
func Geohash(loc models.LatAndLong) string {
	return geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, geohashChars)
}
