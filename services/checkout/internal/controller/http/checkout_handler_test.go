package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pin-packs/pkg/logger"
	"pin-packs/pkg/middleware"
	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) FulfillOrder(ctx context.Context, input usecase.FulfillOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

var _ usecase.CheckoutUseCase = (*MockCheckoutUseCase)(nil)

func setupTestRouter(handler *CheckoutHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger.New()))
	r.POST("/orders/fulfill", handler.FulfillOrder)
	return r
}

func fulfill(router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest(http.MethodPost, "/orders/fulfill", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func TestFulfillOrder_Success(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	router := setupTestRouter(NewCheckoutHandler(mockUseCase, logger.New()))

	completedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockUseCase.On("FulfillOrder", mock.Anything, mock.MatchedBy(func(in usecase.FulfillOrderInput) bool {
		return in.OrderID == "o1" && in.PaypalOrderID == "PAY1" && in.CustomerEmail == "buyer@x.com"
	})).Return(&entity.Order{
		ID:            "o1",
		Status:        entity.OrderStatusCompleted,
		PaypalOrderID: "PAY1",
		CompletedAt:   &completedAt,
	}, nil)

	w, response := fulfill(router, `{"orderId": "o1", "paypalOrderId": "PAY1", "customerEmail": "buyer@x.com", "paymentDetails": {"id": "X"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Order completed successfully", response["message"])
	order := response["order"].(map[string]interface{})
	assert.Equal(t, "completed", order["status"])
	assert.NotNil(t, order["completed_at"])
	mockUseCase.AssertExpectations(t)
}

func TestFulfillOrder_MissingFields(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	router := setupTestRouter(NewCheckoutHandler(mockUseCase, logger.New()))

	mockUseCase.On("FulfillOrder", mock.Anything, mock.Anything).Return(nil, &usecase.FulfillmentError{
		Code:    usecase.CodeMissingRequiredField,
		Message: "Missing required fields: orderId and paypalOrderId",
	})

	w, response := fulfill(router, `{"orderId": "o1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: orderId and paypalOrderId", response["error"])
}

func TestFulfillOrder_ServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantError   string
		wantDetails string
	}{
		{
			name:        "order update failed",
			err:         &usecase.FulfillmentError{Code: usecase.CodeOrderUpdateFailed, Message: "Failed to update order", Err: errors.New("order not found")},
			wantError:   "Failed to update order",
			wantDetails: "order not found",
		},
		{
			name:        "items read failed",
			err:         &usecase.FulfillmentError{Code: usecase.CodeOrderItemsReadFailed, Message: "Failed to fetch order items", Err: errors.New("timeout")},
			wantError:   "Failed to fetch order items",
			wantDetails: "timeout",
		},
		{
			name:        "unexpected",
			err:         errors.New("boom"),
			wantError:   "Internal server error",
			wantDetails: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockCheckoutUseCase)
			router := setupTestRouter(NewCheckoutHandler(mockUseCase, logger.New()))
			mockUseCase.On("FulfillOrder", mock.Anything, mock.Anything).Return(nil, tt.err)

			w, response := fulfill(router, `{"orderId": "o1", "paypalOrderId": "PAY1"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantError, response["error"])
			assert.Equal(t, tt.wantDetails, response["details"])
		})
	}
}

func TestFulfillOrder_PanicBecomesInternalError(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	router := setupTestRouter(NewCheckoutHandler(mockUseCase, logger.New()))
	mockUseCase.On("FulfillOrder", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("nil pointer")
	})

	w, response := fulfill(router, `{"orderId": "o1", "paypalOrderId": "PAY1"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", response["error"])
	assert.Contains(t, response["details"], "nil pointer")
}

func TestFulfillOrder_InvalidJSON(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	router := setupTestRouter(NewCheckoutHandler(mockUseCase, logger.New()))

	w, _ := fulfill(router, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "FulfillOrder", mock.Anything, mock.Anything)
}
