package http

import (
	"errors"
	"net/http"

	"pin-packs/pkg/logger"
	"pin-packs/services/catalog/internal/repo/persistent"
	"pin-packs/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	uploadUseCase  usecase.UploadUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, uploadUseCase usecase.UploadUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		uploadUseCase:  uploadUseCase,
		logger:         logger,
	}
}

// CreatePack godoc
// @Summary      Create pack
// @Description  Create a pin pack with its pins. Steps run in order without a transaction, so a failed step leaves earlier rows behind.
// @Tags         packs
// @Accept       json
// @Produce      json
// @Param        request body usecase.CreatePackInput true "Pack and pins"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /packs [post]
func (h *CatalogHandler) CreatePack(c *gin.Context) {
	var req usecase.CreatePackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	packID, err := h.catalogUseCase.CreatePack(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		var stepErr *usecase.StepError
		if errors.As(err, &stepErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": stepErr.Error(),
				"step":  string(stepErr.Step),
			})
			return
		}

		h.logger.Error("Failed to create pack: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": packID})
}

// GetPack godoc
// @Summary      Get pack
// @Description  Get a pack with its pins in link order
// @Tags         packs
// @Produce      json
// @Param        id   path      string  true  "Pack ID"
// @Success      200  {object}  entity.Pack
// @Failure      404  {object}  map[string]string
// @Router       /packs/{id} [get]
func (h *CatalogHandler) GetPack(c *gin.Context) {
	pack, err := h.catalogUseCase.GetPack(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, persistent.ErrPackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		h.logger.Error("Failed to get pack: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pack)
}
