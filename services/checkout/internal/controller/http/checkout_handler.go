package http

import (
	"net/http"

	"pin-packs/pkg/logger"
	"pin-packs/services/checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
	logger          *logger.Logger
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		logger:          logger,
	}
}

// FulfillOrder godoc
// @Summary      Fulfill order
// @Description  Complete an order after payment confirmation and update download counts of its packs. Succeeds once the order row is completed, even if some counters could not be updated.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body usecase.FulfillOrderInput true "Payment confirmation"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /orders/fulfill [post]
func (h *CheckoutHandler) FulfillOrder(c *gin.Context) {
	var req usecase.FulfillOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := h.checkoutUseCase.FulfillOrder(c.Request.Context(), req)
	if err != nil {
		fulfillErr := usecase.AsFulfillmentError(err)
		switch fulfillErr.Code {
		case usecase.CodeMissingRequiredField:
			c.JSON(http.StatusBadRequest, gin.H{"error": fulfillErr.Message})
			return
		case usecase.CodeInternal:
			h.logger.Error("Unexpected fulfillment error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   fulfillErr.Message,
			"details": fulfillErr.Details(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
		"message": "Order completed successfully",
	})
}
