package persistent

import (
	"context"
	"errors"

	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	CompleteOrder(ctx context.Context, completion *entity.OrderCompletion) (*entity.Order, error)
	GetOrderItemPackIDs(ctx context.Context, orderID string) ([]string, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CompleteOrder matches the order by id only. Completing an already completed
// order rewrites the payment fields.
func (r *orderRepository) CompleteOrder(ctx context.Context, completion *entity.OrderCompletion) (*entity.Order, error) {
	var orders []model.OrderModel
	result := r.db.WithContext(ctx).
		Model(&orders).
		Clauses(clause.Returning{}).
		Where("id = ?", completion.OrderID).
		Updates(completionUpdates(completion))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	return ToOrderEntity(&orders[0]), nil
}

func (r *orderRepository) GetOrderItemPackIDs(ctx context.Context, orderID string) ([]string, error) {
	var packIDs []string
	if err := r.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Pluck("pack_id", &packIDs).Error; err != nil {
		return nil, err
	}
	return packIDs, nil
}
