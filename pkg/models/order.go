package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

type DownloadType string

const (
	DownloadTypePurchase DownloadType = "purchase"
)

type Order struct {
	ID              string          `gorm:"type:uuid;primary_key" json:"id"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaypalOrderID   string          `gorm:"index" json:"paypal_order_id"`
	PaypalPayerID   string          `json:"paypal_payer_id"`
	PaypalPaymentID string          `json:"paypal_payment_id"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	PaymentDetails  []byte          `gorm:"type:jsonb" json:"payment_details,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_amount"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

type OrderItem struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	PackID    string          `gorm:"type:uuid;not null;index" json:"pack_id"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

type DownloadEvent struct {
	ID           string       `gorm:"type:uuid;primary_key" json:"id"`
	PackID       string       `gorm:"type:uuid;not null;index" json:"pack_id"`
	DownloadType DownloadType `gorm:"type:varchar(20);not null" json:"download_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (e *DownloadEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
