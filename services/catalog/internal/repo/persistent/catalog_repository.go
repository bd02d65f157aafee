package persistent

import (
	"context"
	"errors"

	"pin-packs/services/catalog/internal/entity"
	"pin-packs/services/catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoRowReturned = errors.New("no row returned from insert")
	ErrPackNotFound  = errors.New("pack not found")
)

// CatalogRepository never opens a transaction. Each method is one statement
// and callers own the ordering between them.
type CatalogRepository interface {
	CreatePack(ctx context.Context, pack *entity.Pack) error
	CreatePins(ctx context.Context, pins []*entity.Pin) error
	CreatePackPins(ctx context.Context, links []*entity.PackPin) error
	UpdatePinCount(ctx context.Context, packID string, pinCount int) error
	GetPackWithPins(ctx context.Context, packID string) (*entity.Pack, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreatePack(ctx context.Context, pack *entity.Pack) error {
	packModel := ToPackModel(pack)
	if packModel.ID == "" {
		packModel.ID = uuid.New().String()
	}

	result := r.db.WithContext(ctx).Create(packModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRowReturned
	}

	*pack = *ToPackEntity(packModel)
	return nil
}

func (r *catalogRepository) CreatePins(ctx context.Context, pins []*entity.Pin) error {
	if len(pins) == 0 {
		return nil
	}

	pinModels := make([]*model.PinModel, len(pins))
	for i, pin := range pins {
		pinModels[i] = ToPinModel(pin)
		if pinModels[i].ID == "" {
			pinModels[i].ID = uuid.New().String()
		}
	}

	result := r.db.WithContext(ctx).Create(&pinModels)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(pinModels)) {
		return ErrNoRowReturned
	}

	for i, m := range pinModels {
		created := ToPinEntity(m)
		*pins[i] = created
	}
	return nil
}

func (r *catalogRepository) CreatePackPins(ctx context.Context, links []*entity.PackPin) error {
	if len(links) == 0 {
		return nil
	}

	linkModels := make([]*model.PackPinModel, len(links))
	for i, link := range links {
		linkModels[i] = ToPackPinModel(link)
	}

	return r.db.WithContext(ctx).Create(&linkModels).Error
}

func (r *catalogRepository) UpdatePinCount(ctx context.Context, packID string, pinCount int) error {
	result := r.db.WithContext(ctx).
		Model(&model.PackModel{}).
		Where("id = ?", packID).
		Update("pin_count", pinCount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackNotFound
	}
	return nil
}

func (r *catalogRepository) GetPackWithPins(ctx context.Context, packID string) (*entity.Pack, error) {
	var packModel model.PackModel
	if err := r.db.WithContext(ctx).Where("id = ?", packID).First(&packModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackNotFound
		}
		return nil, err
	}

	var pinModels []model.PinModel
	if err := r.db.WithContext(ctx).
		Table("pins").
		Select("pins.*").
		Joins("JOIN pack_pins ON pack_pins.pin_id = pins.id").
		Where("pack_pins.pack_id = ?", packID).
		Order("pack_pins.position ASC").
		Find(&pinModels).Error; err != nil {
		return nil, err
	}

	pack := ToPackEntity(&packModel)
	pack.Pins = make([]entity.Pin, len(pinModels))
	for i := range pinModels {
		pack.Pins[i] = ToPinEntity(&pinModels[i])
	}
	return pack, nil
}
