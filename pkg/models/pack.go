package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackStatus string

const (
	PackStatusPending PackStatus = "pending"
	PackStatusActive  PackStatus = "active"
)

type Pack struct {
	ID                string          `gorm:"type:uuid;primary_key" json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	City              string          `json:"city"`
	Country           string          `json:"country"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	CreatorEmail      string          `gorm:"not null;index" json:"creator_email"`
	PinCount          int             `gorm:"not null;default:0" json:"pin_count"`
	Categories        pq.StringArray  `gorm:"type:text[]" json:"categories"`
	MapsListReference string          `json:"maps_list_reference"`
	Status            PackStatus      `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DownloadCount     *int            `gorm:"default:0" json:"download_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (p *Pack) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type Pin struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	GoogleMapsURL string         `json:"google_maps_url"`
	Category      string         `gorm:"default:'other'" json:"category"`
	Latitude      float64        `gorm:"type:double precision;default:0" json:"latitude"`
	Longitude     float64        `gorm:"type:double precision;default:0" json:"longitude"`
	PlaceID       *string        `json:"place_id"`
	Photos        pq.StringArray `gorm:"type:text[]" json:"photos"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (p *Pin) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PackPin struct {
	PackID    string    `gorm:"type:uuid;primaryKey" json:"pack_id"`
	PinID     string    `gorm:"type:uuid;primaryKey" json:"pin_id"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
