package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pin-packs/pkg/logger"
	"pin-packs/services/catalog/internal/entity"
	"pin-packs/services/catalog/internal/repo/persistent"
	"pin-packs/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) CreatePack(ctx context.Context, input usecase.CreatePackInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogUseCase) GetPack(ctx context.Context, packID string) (*entity.Pack, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pack), args.Error(1)
}

type MockUploadUseCase struct {
	mock.Mock
}

func (m *MockUploadUseCase) SignPhotoUpload(ctx context.Context, filename, contentType string) (*entity.UploadTicket, error) {
	args := m.Called(ctx, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UploadTicket), args.Error(1)
}

var (
	_ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)
	_ usecase.UploadUseCase  = (*MockUploadUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestHandler() (*CatalogHandler, *MockCatalogUseCase, *MockUploadUseCase) {
	catalogUseCase := new(MockCatalogUseCase)
	uploadUseCase := new(MockUploadUseCase)
	return NewCatalogHandler(catalogUseCase, uploadUseCase, logger.New()), catalogUseCase, uploadUseCase
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePack_Created(t *testing.T) {
	handler, mockUseCase, _ := newTestHandler()
	router := setupTestRouter()
	router.POST("/packs", handler.CreatePack)

	mockUseCase.On("CreatePack", mock.Anything, mock.MatchedBy(func(in usecase.CreatePackInput) bool {
		return in.Email == "a@x.com" && len(in.Pins) == 2 && in.Price == 9.99
	})).Return("pack-1", nil)

	w := postJSON(router, "/packs", `{
		"email": "a@x.com",
		"title": "Lisbon",
		"price": 9.99,
		"pins": [{"title": "Tower", "latitude": 38.69, "longitude": -9.21}, {"title": "Park"}]
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pack-1", response["id"])
	mockUseCase.AssertExpectations(t)
}

func TestCreatePack_MissingEmail(t *testing.T) {
	handler, mockUseCase, _ := newTestHandler()
	router := setupTestRouter()
	router.POST("/packs", handler.CreatePack)

	mockUseCase.On("CreatePack", mock.Anything, mock.Anything).Return("", usecase.ErrMissingEmail)

	w := postJSON(router, "/packs", `{"title": "No owner"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Email is required", response["error"])
}

func TestCreatePack_InvalidBody(t *testing.T) {
	handler, mockUseCase, _ := newTestHandler()
	router := setupTestRouter()
	router.POST("/packs", handler.CreatePack)

	w := postJSON(router, "/packs", `{"email": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePack", mock.Anything, mock.Anything)
}

func TestCreatePack_StepFailure(t *testing.T) {
	handler, mockUseCase, _ := newTestHandler()
	router := setupTestRouter()
	router.POST("/packs", handler.CreatePack)

	mockUseCase.On("CreatePack", mock.Anything, mock.Anything).Return("", &usecase.StepError{
		Step:   usecase.StepLinkPins,
		PackID: "pack-1",
		Err:    errors.New("foreign key violation"),
	})

	w := postJSON(router, "/packs", `{"email": "a@x.com", "pins": [{"title": "x"}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Failed to link pins to pack: foreign key violation", response["error"])
	assert.Equal(t, "link_pins", response["step"])
}

func TestGetPack(t *testing.T) {
	handler, mockUseCase, _ := newTestHandler()
	router := setupTestRouter()
	router.GET("/packs/:id", handler.GetPack)

	mockUseCase.On("GetPack", mock.Anything, "pack-1").Return(&entity.Pack{
		ID:       "pack-1",
		PinCount: 1,
		Pins:     []entity.Pin{{ID: "pin-1", Title: "Tower"}},
	}, nil)
	mockUseCase.On("GetPack", mock.Anything, "missing").Return(nil, persistent.ErrPackNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/packs/pack-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var pack entity.Pack
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pack))
	assert.Equal(t, 1, pack.PinCount)
	assert.Equal(t, "Tower", pack.Pins[0].Title)

	req, _ = http.NewRequest(http.MethodGet, "/packs/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignUpload(t *testing.T) {
	handler, _, mockUpload := newTestHandler()
	router := setupTestRouter()
	router.POST("/uploads/sign", handler.SignUpload)

	mockUpload.On("SignPhotoUpload", mock.Anything, "a.jpg", "image/jpeg").Return(&entity.UploadTicket{
		Key:       "pins/abc.jpg",
		UploadURL: "https://signed.example/put",
		PhotoURL:  "https://cdn.example/pins/abc.jpg",
		ExpiresIn: 900,
	}, nil)
	mockUpload.On("SignPhotoUpload", mock.Anything, "a.pdf", "application/pdf").Return(nil, usecase.ErrInvalidContentType)

	w := postJSON(router, "/uploads/sign", `{"filename": "a.jpg", "content_type": "image/jpeg"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var ticket entity.UploadTicket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, "https://cdn.example/pins/abc.jpg", ticket.PhotoURL)

	w = postJSON(router, "/uploads/sign", `{"filename": "a.pdf", "content_type": "application/pdf"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/uploads/sign", `{"filename": "a.jpg"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
