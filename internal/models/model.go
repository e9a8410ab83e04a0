package models

import "time"

// Customer is the person placing a bid
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Picture is an image attached to a listing
type Picture struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Bid is an accepted offer on a property. Bids are only created by a ledger.
type Bid struct {
	BidID        string    `json:"bid_id"`
	PriceOffered int       `json:"price_offered"`
	Customer     Customer  `json:"customer"`
	TimeOfBid    time.Time `json:"time_of_bid"`
}

// LatAndLong is a geographic coordinate
type LatAndLong struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
