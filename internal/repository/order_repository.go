package repository

import (
	"context"
	"errors"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when no order carries the requested protocol number.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetByProtocol(ctx context.Context, protocol string) (*entity.ServiceOrder, error) {
	var order entity.ServiceOrder
	err := r.db.WithContext(ctx).Where("protocol_number = ?", protocol).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// DeleteByProtocol removes exactly one order. ErrOrderNotFound when nothing matched.
func (r *OrderRepository) DeleteByProtocol(ctx context.Context, protocol string) error {
	res := r.db.WithContext(ctx).Where("protocol_number = ?", protocol).Delete(&entity.ServiceOrder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ProtocolExists probes a protocol number without loading the row.
func (r *OrderRepository) ProtocolExists(ctx context.Context, protocol string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ServiceOrder{}).
		Where("protocol_number = ?", protocol).Count(&count).Error
	return count > 0, err
}

// List returns every order in insertion order. The read-side views derive
// everything else (filters, recency, pagination, grouping) from this sequence.
func (r *OrderRepository) List(ctx context.Context) ([]entity.ServiceOrder, error) {
	var orders []entity.ServiceOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ServiceOrder{}).Count(&count).Error
	return count, err
}
