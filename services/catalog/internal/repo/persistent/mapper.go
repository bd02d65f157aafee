package persistent

import (
	"pin-packs/services/catalog/internal/entity"
	"pin-packs/services/catalog/internal/model"

	"github.com/lib/pq"
)

func ToPackEntity(m *model.PackModel) *entity.Pack {
	if m == nil {
		return nil
	}

	pack := &entity.Pack{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		City:              m.City,
		Country:           m.Country,
		Price:             m.Price,
		CreatorEmail:      m.CreatorEmail,
		PinCount:          m.PinCount,
		Categories:        []string(m.Categories),
		MapsListReference: m.MapsListReference,
		Status:            entity.PackStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DownloadCount != nil {
		pack.DownloadCount = *m.DownloadCount
	}
	if pack.Categories == nil {
		pack.Categories = []string{}
	}

	return pack
}

func ToPackModel(e *entity.Pack) *model.PackModel {
	if e == nil {
		return nil
	}

	downloads := e.DownloadCount
	return &model.PackModel{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		City:              e.City,
		Country:           e.Country,
		Price:             e.Price,
		CreatorEmail:      e.CreatorEmail,
		PinCount:          e.PinCount,
		Categories:        textArray(e.Categories),
		MapsListReference: e.MapsListReference,
		Status:            string(e.Status),
		DownloadCount:     &downloads,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToPinEntity(m *model.PinModel) entity.Pin {
	pin := entity.Pin{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		GoogleMapsURL: m.GoogleMapsURL,
		Category:      m.Category,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Photos:        []string(m.Photos),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.PlaceID != nil {
		pin.PlaceID = *m.PlaceID
	}
	if pin.Photos == nil {
		pin.Photos = []string{}
	}
	return pin
}

func ToPinModel(e *entity.Pin) *model.PinModel {
	pin := &model.PinModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		GoogleMapsURL: e.GoogleMapsURL,
		Category:      e.Category,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Photos:        textArray(e.Photos),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.PlaceID != "" {
		placeID := e.PlaceID
		pin.PlaceID = &placeID
	}
	return pin
}

func ToPackPinModel(e *entity.PackPin) *model.PackPinModel {
	return &model.PackPinModel{
		PackID:    e.PackID,
		PinID:     e.PinID,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}

// textArray never returns nil; a nil pq.StringArray is written as NULL and the
// array columns are NOT NULL.
func textArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
