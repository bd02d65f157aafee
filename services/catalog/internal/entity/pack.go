package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackStatus string

const (
	PackStatusPending PackStatus = "pending"
	PackStatusActive  PackStatus = "active"
)

type Pack struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	City              string          `json:"city"`
	Country           string          `json:"country"`
	Price             decimal.Decimal `json:"price"`
	CreatorEmail      string          `json:"creator_email"`
	PinCount          int             `json:"pin_count"`
	Categories        []string        `json:"categories"`
	MapsListReference string          `json:"maps_list_reference,omitempty"`
	Status            PackStatus      `json:"status"`
	DownloadCount     int             `json:"download_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Pins              []Pin           `json:"pins,omitempty"`
}

type Pin struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GoogleMapsURL string    `json:"google_maps_url"`
	Category      string    `json:"category"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	PlaceID       string    `json:"place_id,omitempty"`
	Photos        []string  `json:"photos"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PackPin links a pin to a pack. Position keeps the order the pins were
// submitted in.
type PackPin struct {
	PackID    string    `json:"pack_id"`
	PinID     string    `json:"pin_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
