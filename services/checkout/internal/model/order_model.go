package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderModel struct {
	ID              string          `gorm:"type:uuid;primary_key" json:"id"`
	Status          string          `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaypalOrderID   string          `gorm:"type:text;not null;default:''" json:"paypal_order_id"`
	PaypalPayerID   string          `gorm:"type:text;not null;default:''" json:"paypal_payer_id"`
	PaypalPaymentID string          `gorm:"type:text;not null;default:''" json:"paypal_payment_id"`
	CustomerEmail   string          `gorm:"type:text;not null;default:''" json:"customer_email"`
	CustomerName    string          `gorm:"type:text;not null;default:''" json:"customer_name"`
	PaymentDetails  *string         `gorm:"type:jsonb" json:"payment_details"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	PackID    string          `gorm:"type:uuid;not null" json:"pack_id"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// PackCounterModel maps only the download counter of a pack row.
type PackCounterModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	DownloadCount *int   `gorm:"column:download_count"`
}

func (PackCounterModel) TableName() string {
	return "packs"
}

type DownloadEventModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	PackID       string    `gorm:"type:uuid;not null;index" json:"pack_id"`
	DownloadType string    `gorm:"type:varchar(20);not null" json:"download_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (DownloadEventModel) TableName() string {
	return "download_events"
}

func (e *DownloadEventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
