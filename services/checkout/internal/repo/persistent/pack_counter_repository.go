package persistent

import (
	"context"
	"errors"

	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/model"

	"gorm.io/gorm"
)

const incrementFunction = "increment_download_count"

var ErrPackNotFound = errors.New("pack not found")

type PackCounterRepository interface {
	// IncrementDownloadCount calls the database function, which also records
	// the purchase download event. An unknown pack is not an error.
	IncrementDownloadCount(ctx context.Context, packID string) error
	GetDownloadCount(ctx context.Context, packID string) (int, error)
	SetDownloadCount(ctx context.Context, packID string, count int) error
	CreateDownloadEvent(ctx context.Context, packID string, downloadType entity.DownloadType) error
	SupportsAtomicIncrement(ctx context.Context) (bool, error)
}

type packCounterRepository struct {
	db *gorm.DB
}

func NewPackCounterRepository(db *gorm.DB) PackCounterRepository {
	return &packCounterRepository{db: db}
}

func (r *packCounterRepository) IncrementDownloadCount(ctx context.Context, packID string) error {
	return r.db.WithContext(ctx).Exec("SELECT "+incrementFunction+"(?)", packID).Error
}

func (r *packCounterRepository) GetDownloadCount(ctx context.Context, packID string) (int, error) {
	var pack model.PackCounterModel
	if err := r.db.WithContext(ctx).
		Select("id", "download_count").
		Where("id = ?", packID).
		First(&pack).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPackNotFound
		}
		return 0, err
	}

	if pack.DownloadCount == nil {
		return 0, nil
	}
	return *pack.DownloadCount, nil
}

func (r *packCounterRepository) SetDownloadCount(ctx context.Context, packID string, count int) error {
	result := r.db.WithContext(ctx).
		Model(&model.PackCounterModel{}).
		Where("id = ?", packID).
		Update("download_count", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackNotFound
	}
	return nil
}

func (r *packCounterRepository) CreateDownloadEvent(ctx context.Context, packID string, downloadType entity.DownloadType) error {
	return r.db.WithContext(ctx).Create(&model.DownloadEventModel{
		PackID:       packID,
		DownloadType: string(downloadType),
	}).Error
}

func (r *packCounterRepository) SupportsAtomicIncrement(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM pg_proc WHERE proname = ?)", incrementFunction).
		Scan(&exists).Error
	return exists, err
}
