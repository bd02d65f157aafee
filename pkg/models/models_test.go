package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack_BeforeCreate(t *testing.T) {
	pack := &Pack{
		Title:        "Paris Highlights",
		CreatorEmail: "a@b.com",
		Status:       PackStatusPending,
	}

	// BeforeCreate should set ID if empty
	err := pack.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, pack.ID)
}

func TestPack_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-pack-id"
	pack := &Pack{ID: existingID, CreatorEmail: "a@b.com"}

	err := pack.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, pack.ID)
}

func TestPin_BeforeCreate(t *testing.T) {
	pin := &Pin{Title: "Eiffel Tower", Latitude: 48.858, Longitude: 2.294}

	err := pin.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, pin.ID)
}

func TestOrder_BeforeCreate(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	item := &OrderItem{PackID: "pack-1"}
	event := &DownloadEvent{PackID: "pack-1", DownloadType: DownloadTypePurchase}

	assert.NoError(t, order.BeforeCreate(nil))
	assert.NoError(t, item.BeforeCreate(nil))
	assert.NoError(t, event.BeforeCreate(nil))
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, item.ID)
	assert.NotEmpty(t, event.ID)
	assert.NotEqual(t, item.ID, event.ID)
}

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, PackStatus("pending"), PackStatusPending)
	assert.Equal(t, PackStatus("active"), PackStatusActive)
	assert.Equal(t, OrderStatus("completed"), OrderStatusCompleted)
	assert.Equal(t, DownloadType("purchase"), DownloadTypePurchase)
}
