package http

import (
	"errors"
	"net/http"

	"pin-packs/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// SignUpload godoc
// @Summary      Sign photo upload
// @Description  Returns a presigned PUT URL for a pin photo and the URL the photo will be served from
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        request body SignUploadRequest true "File to upload"
// @Success      200  {object}  entity.UploadTicket
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /uploads/sign [post]
func (h *CatalogHandler) SignUpload(c *gin.Context) {
	var req SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.uploadUseCase.SignPhotoUpload(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFilename) || errors.Is(err, usecase.ErrInvalidContentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}
