package usecase

import (
	"context"
	"strings"

	"pin-packs/pkg/logger"
	"pin-packs/pkg/sanitize"
	"pin-packs/services/catalog/internal/entity"
	"pin-packs/services/catalog/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	defaultPinTitle       = "Imported Place"
	defaultPinDescription = "Amazing place to visit"
	defaultPinCategory    = "other"
)

type CreatePackInput struct {
	Email             string      `json:"email"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	City              string      `json:"city"`
	Country           string      `json:"country"`
	Price             interface{} `json:"price" swaggertype:"number"`
	Pins              []PinInput  `json:"pins"`
	PinCount          interface{} `json:"pin_count" swaggertype:"integer"`
	Categories        []string    `json:"categories"`
	MapsListReference string      `json:"maps_list_reference"`
	Status            string      `json:"status"`
}

type PinInput struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	GoogleMapsURL string      `json:"google_maps_url"`
	Category      string      `json:"category"`
	Latitude      interface{} `json:"latitude" swaggertype:"number"`
	Longitude     interface{} `json:"longitude" swaggertype:"number"`
	PlaceID       string      `json:"place_id"`
	Photos        []string    `json:"photos"`
}

type CatalogUseCase interface {
	CreatePack(ctx context.Context, input CreatePackInput) (string, error)
	GetPack(ctx context.Context, packID string) (*entity.Pack, error)
}

type catalogUseCase struct {
	catalogRepo persistent.CatalogRepository
	logger      *logger.Logger
}

func NewCatalogUseCase(catalogRepo persistent.CatalogRepository, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreatePack writes the pack, its pins, the pack-pin links and finally the
// reconciled pin count, in that order. A failed step stops the pipeline and
// nothing written before it is undone.
func (uc *catalogUseCase) CreatePack(ctx context.Context, input CreatePackInput) (string, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return "", ErrMissingEmail
	}

	pins := buildPins(input.Pins)
	pinCount := sanitize.Count(input.PinCount)
	if len(pins) > 0 {
		pinCount = len(pins)
	}

	status := entity.PackStatus(sanitize.Text(input.Status))
	if status == "" {
		status = entity.PackStatusPending
	}

	pack := &entity.Pack{
		Title:             sanitize.Text(input.Title),
		Description:       sanitize.Text(input.Description),
		City:              sanitize.Text(input.City),
		Country:           sanitize.Text(input.Country),
		Price:             sanitize.Price(input.Price),
		CreatorEmail:      email,
		PinCount:          pinCount,
		Categories:        sanitize.Categories(input.Categories),
		MapsListReference: sanitize.Text(input.MapsListReference),
		Status:            status,
	}

	if err := uc.catalogRepo.CreatePack(ctx, pack); err != nil {
		uc.logger.Error("Failed to insert pack for %s: %v", email, err)
		return "", &StepError{Step: StepInsertPack, Err: err}
	}

	log := uc.logger.WithFields(map[string]interface{}{
		"pack_id": pack.ID,
		"creator": email,
	})

	if len(pins) == 0 {
		log.Info("Pack created without pins, pin_count=%d", pack.PinCount)
		return pack.ID, nil
	}

	if err := uc.catalogRepo.CreatePins(ctx, pins); err != nil {
		log.Error("Failed to insert %d pins, pack left without pins: %v", len(pins), err)
		return "", &StepError{Step: StepInsertPins, PackID: pack.ID, Err: err}
	}

	links := make([]*entity.PackPin, 0, len(pins))
	for i, pin := range pins {
		links = append(links, &entity.PackPin{
			PackID:   pack.ID,
			PinID:    pin.ID,
			Position: i,
		})
	}

	if err := uc.catalogRepo.CreatePackPins(ctx, links); err != nil {
		log.Error("Failed to link %d pins, pins left unlinked: %v", len(links), err)
		return "", &StepError{Step: StepLinkPins, PackID: pack.ID, Err: err}
	}

	if err := uc.catalogRepo.UpdatePinCount(ctx, pack.ID, len(links)); err != nil {
		log.Warn("step=%s pin_count may be stale: %v", StepReconcilePinCount, err)
	}

	log.Info("Pack created with %d pins", len(links))
	return pack.ID, nil
}

func (uc *catalogUseCase) GetPack(ctx context.Context, packID string) (*entity.Pack, error) {
	if _, err := uuid.Parse(packID); err != nil {
		return nil, persistent.ErrPackNotFound
	}
	return uc.catalogRepo.GetPackWithPins(ctx, packID)
}

func buildPins(inputs []PinInput) []*entity.Pin {
	pins := make([]*entity.Pin, 0, len(inputs))
	for _, in := range inputs {
		pins = append(pins, &entity.Pin{
			Title:         sanitize.TextOr(in.Title, defaultPinTitle),
			Description:   sanitize.TextOr(in.Description, defaultPinDescription),
			GoogleMapsURL: strings.TrimSpace(in.GoogleMapsURL),
			Category:      sanitize.TextOr(in.Category, defaultPinCategory),
			Latitude:      sanitize.Float(in.Latitude),
			Longitude:     sanitize.Float(in.Longitude),
			PlaceID:       strings.TrimSpace(in.PlaceID),
			Photos:        sanitize.URLs(in.Photos),
		})
	}
	return pins
}
