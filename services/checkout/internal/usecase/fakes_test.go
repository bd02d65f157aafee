package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

var errFunctionMissing = errors.New(`function increment_download_count(unknown) does not exist`)

type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	items  map[string][]string
	calls  int

	failComplete error
	failItems    error
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{
		orders: map[string]*entity.Order{},
		items:  map[string][]string{},
	}
}

func (r *memoryOrderRepository) addOrder(id string, packIDs ...string) {
	r.orders[id] = &entity.Order{ID: id, Status: entity.OrderStatusPending}
	r.items[id] = packIDs
}

func (r *memoryOrderRepository) CompleteOrder(ctx context.Context, c *entity.OrderCompletion) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failComplete != nil {
		return nil, r.failComplete
	}
	order, ok := r.orders[c.OrderID]
	if !ok {
		return nil, persistent.ErrOrderNotFound
	}
	completedAt := c.CompletedAt
	order.Status = entity.OrderStatusCompleted
	order.PaypalOrderID = c.PaypalOrderID
	order.PaypalPayerID = c.PaypalPayerID
	order.PaypalPaymentID = c.PaypalPaymentID
	order.CustomerEmail = c.CustomerEmail
	order.CustomerName = c.CustomerName
	order.PaymentDetails = c.PaymentDetails
	order.CompletedAt = &completedAt
	result := *order
	return &result, nil
}

func (r *memoryOrderRepository) GetOrderItemPackIDs(ctx context.Context, orderID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failItems != nil {
		return nil, r.failItems
	}
	return append([]string(nil), r.items[orderID]...), nil
}

// memoryCounterStore mimics the packs and download_events tables. When
// readBarrier is set every read waits for the others before returning.
type memoryCounterStore struct {
	mu     sync.Mutex
	counts map[string]*int
	events []string
	calls  int

	atomicSupported bool
	supportErr      error
	failGet         map[string]error
	failSet         map[string]error
	failEvent       error
	readBarrier     *sync.WaitGroup
}

func newMemoryCounterStore(atomicSupported bool) *memoryCounterStore {
	return &memoryCounterStore{
		counts:          map[string]*int{},
		atomicSupported: atomicSupported,
		failGet:         map[string]error{},
		failSet:         map[string]error{},
	}
}

func (s *memoryCounterStore) addPack(id string, count *int) {
	s.counts[id] = count
}

func (s *memoryCounterStore) count(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.counts[id]; c != nil {
		return *c
	}
	return 0
}

func (s *memoryCounterStore) IncrementDownloadCount(ctx context.Context, packID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if !s.atomicSupported {
		return errFunctionMissing
	}
	current, ok := s.counts[packID]
	if !ok {
		return nil
	}
	next := 1
	if current != nil {
		next = *current + 1
	}
	s.counts[packID] = &next
	s.events = append(s.events, packID)
	return nil
}

func (s *memoryCounterStore) GetDownloadCount(ctx context.Context, packID string) (int, error) {
	s.mu.Lock()
	s.calls++
	if err := s.failGet[packID]; err != nil {
		s.mu.Unlock()
		return 0, err
	}
	current, ok := s.counts[packID]
	s.mu.Unlock()

	if s.readBarrier != nil {
		s.readBarrier.Done()
		s.readBarrier.Wait()
	}

	if !ok {
		return 0, persistent.ErrPackNotFound
	}
	if current == nil {
		return 0, nil
	}
	return *current, nil
}

func (s *memoryCounterStore) SetDownloadCount(ctx context.Context, packID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.failSet[packID]; err != nil {
		return err
	}
	if _, ok := s.counts[packID]; !ok {
		return persistent.ErrPackNotFound
	}
	s.counts[packID] = &count
	return nil
}

func (s *memoryCounterStore) CreateDownloadEvent(ctx context.Context, packID string, downloadType entity.DownloadType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failEvent != nil {
		return s.failEvent
	}
	s.events = append(s.events, packID)
	return nil
}

func (s *memoryCounterStore) SupportsAtomicIncrement(ctx context.Context) (bool, error) {
	return s.atomicSupported, s.supportErr
}

type MockReportPublisher struct {
	mock.Mock
}

func (m *MockReportPublisher) PublishReport(ctx context.Context, report *entity.FulfillmentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MockConfirmationSender struct {
	mock.Mock
}

func (m *MockConfirmationSender) SendConfirmation(ctx context.Context, order *entity.Order, packIDs []string) error {
	args := m.Called(ctx, order, packIDs)
	return args.Error(0)
}

func intPtr(n int) *int {
	return &n
}

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}
