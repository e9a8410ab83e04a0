package models

import "fmt"

// HousingType is the structural type of a house
type HousingType string

const (
	Detached     HousingType = "DETACHED"
	SemiDetached HousingType = "SEMI_DETACHED"
	Terraced     HousingType = "TERRACED"
	Bungalow     HousingType = "BUNGALOW"
)

// ParseHousingType converts an external value into a HousingType
func ParseHousingType(s string) (HousingType, error) {
	switch t := HousingType(s); t {
	case Detached, SemiDetached, Terraced, Bungalow:
		return t, nil
	default:
		return "", fmt.Errorf("unknown housing type %q", s)
	}
}

// Kind names a property variant
type Kind string

const (
	KindGarage    Kind = "garage"
	KindApartment Kind = "apartment"
	KindHouse     Kind = "house"
)

// Variant holds the subtype-specific attributes of a property.
// The set of implementations is closed: Garage, Apartment and House.
type Variant interface {
	Kind() Kind
	isVariant()
}

type Garage struct {
	HasElectricity bool `json:"has_electricity"`
}

type Apartment struct {
	PaymentVVE int `json:"payment_vve" validate:"gte=0"`
	Floor      int `json:"floor"`
}

type House struct {
	Type     HousingType `json:"type" validate:"oneof=DETACHED SEMI_DETACHED TERRACED BUNGALOW"`
	PlotArea int         `json:"plot_area" validate:"gte=0"`
}

func (Garage) Kind() Kind    { return KindGarage }
func (Apartment) Kind() Kind { return KindApartment }
func (House) Kind() Kind     { return KindHouse }

func (Garage) isVariant()    {}
func (Apartment) isVariant() {}
func (House) isVariant()     {}
