package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pin-packs/pkg/logger"
	"pin-packs/services/catalog/internal/entity"

	"github.com/google/uuid"
)

// PhotoSigner is satisfied by *s3.Client.
type PhotoSigner interface {
	PresignUpload(key, contentType string, ttl time.Duration) (string, error)
	ObjectURL(key string) string
}

type UploadUseCase interface {
	SignPhotoUpload(ctx context.Context, filename, contentType string) (*entity.UploadTicket, error)
}

type uploadUseCase struct {
	signer PhotoSigner
	ttl    time.Duration
	logger *logger.Logger
}

func NewUploadUseCase(signer PhotoSigner, ttl time.Duration, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		signer: signer,
		ttl:    ttl,
		logger: logger,
	}
}

func (uc *uploadUseCase) SignPhotoUpload(ctx context.Context, filename, contentType string) (*entity.UploadTicket, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, ErrMissingFilename
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidContentType
	}

	key := fmt.Sprintf("pins/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	uploadURL, err := uc.signer.PresignUpload(key, contentType, uc.ttl)
	if err != nil {
		uc.logger.Error("Failed to presign upload for %s: %v", key, err)
		return nil, fmt.Errorf("failed to sign upload: %w", err)
	}

	return &entity.UploadTicket{
		Key:       key,
		UploadURL: uploadURL,
		PhotoURL:  uc.signer.ObjectURL(key),
		ExpiresIn: int(uc.ttl.Seconds()),
	}, nil
}
