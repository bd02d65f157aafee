package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackModel struct {
	ID                string          `gorm:"type:uuid;primary_key" json:"id"`
	Title             string          `gorm:"type:text" json:"title"`
	Description       string          `gorm:"type:text" json:"description"`
	City              string          `gorm:"type:text" json:"city"`
	Country           string          `gorm:"type:text" json:"country"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	CreatorEmail      string          `gorm:"type:text;not null;index" json:"creator_email"`
	PinCount          int             `gorm:"not null;default:0" json:"pin_count"`
	Categories        pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"categories"`
	MapsListReference string          `gorm:"type:text" json:"maps_list_reference"`
	Status            string          `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DownloadCount     *int            `gorm:"default:0" json:"download_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (PackModel) TableName() string {
	return "packs"
}

func (p *PackModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PinModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `gorm:"type:text" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	GoogleMapsURL string         `gorm:"column:google_maps_url;type:text" json:"google_maps_url"`
	Category      string         `gorm:"type:text;default:'other'" json:"category"`
	Latitude      float64        `gorm:"type:double precision;default:0" json:"latitude"`
	Longitude     float64        `gorm:"type:double precision;default:0" json:"longitude"`
	PlaceID       *string        `gorm:"type:text" json:"place_id"`
	Photos        pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"photos"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (PinModel) TableName() string {
	return "pins"
}

func (p *PinModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PackPinModel struct {
	PackID    string    `gorm:"type:uuid;primaryKey" json:"pack_id"`
	PinID     string    `gorm:"type:uuid;primaryKey" json:"pin_id"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (PackPinModel) TableName() string {
	return "pack_pins"
}
