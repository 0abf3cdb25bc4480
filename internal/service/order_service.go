package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
	"github.com/EvaneiWFreitas/sisManutencao/internal/query"
	"github.com/EvaneiWFreitas/sisManutencao/internal/repository"
)

// How many protocol draws to attempt before giving up. Collisions are rare
// (4 digits per year) but the draw is random, so creation probes the store
// and retries instead of inheriting the source system's race.
const protocolAttempts = 5

type OrderService struct {
	repo  *repository.OrderRepository
	cache *ReportCache
}

func NewOrderService(repo *repository.OrderRepository, cache *ReportCache) *OrderService {
	return &OrderService{repo: repo, cache: cache}
}

// SubmitOrderRequest is the public intake payload. Field names match what the
// site form posts.
type SubmitOrderRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	EquipmentType string `json:"equipmentType"`
	Brand         string `json:"brand"`
	SerialNumber  string `json:"serialNumber"`
	Problem       string `json:"problem"`
	Notes         string `json:"notes"`
}

// Submit validates an intake request, assigns a protocol number and persists
// the order as pending.
func (s *OrderService) Submit(ctx context.Context, req SubmitOrderRequest) (*entity.ServiceOrder, error) {
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"phone", req.Phone},
		{"equipmentType", req.EquipmentType},
		{"problem", req.Problem},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, missingField(f.field)
		}
	}

	protocol, err := s.generateProtocol(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.ServiceOrder{
		ProtocolNumber:  protocol,
		ClientName:      strings.TrimSpace(req.Name),
		ClientPhone:     strings.TrimSpace(req.Phone),
		ClientEmail:     strings.TrimSpace(req.Email),
		EquipmentType:   req.EquipmentType,
		EquipmentBrand:  strings.TrimSpace(req.Brand),
		SerialNumber:    strings.TrimSpace(req.SerialNumber),
		Problem:         strings.TrimSpace(req.Problem),
		AdditionalNotes: strings.TrimSpace(req.Notes),
		Status:          entity.StatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, &StorageError{Op: "create order", Err: err}
	}
	s.invalidate(ctx)
	return order, nil
}

// generateProtocol draws TS<year><0001..9999> until the number is free.
func (s *OrderService) generateProtocol(ctx context.Context) (string, error) {
	year := time.Now().Year()
	for i := 0; i < protocolAttempts; i++ {
		protocol := fmt.Sprintf("TS%d%04d", year, rand.IntN(9999)+1)
		exists, err := s.repo.ProtocolExists(ctx, protocol)
		if err != nil {
			return "", &StorageError{Op: "check protocol", Err: err}
		}
		if !exists {
			return protocol, nil
		}
	}
	return "", &StorageError{Op: "generate protocol", Err: fmt.Errorf("no free protocol number after %d attempts", protocolAttempts)}
}

// Track returns one order by protocol number.
func (s *OrderService) Track(ctx context.Context, protocol string) (*entity.ServiceOrder, error) {
	order, err := s.repo.GetByProtocol(ctx, protocol)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, &NotFoundError{Protocol: protocol}
	}
	if err != nil {
		return nil, &StorageError{Op: "get order", Err: err}
	}
	return order, nil
}

// List returns the orders matching the filters, most recent first.
func (s *OrderService) List(ctx context.Context, filters query.Filters) ([]entity.ServiceOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}
	matched := query.Apply(orders, filters, time.Now())
	return query.Recent(matched, len(matched)), nil
}

// SetStatus moves an order to the given status. Only the four recognized
// values are accepted; re-asserting the current status is allowed and only
// refreshes updated_at, while leaving a completed or cancelled order for a
// different status is rejected.
func (s *OrderService) SetStatus(ctx context.Context, protocol, status string) (*entity.ServiceOrder, error) {
	if !entity.ValidStatus(status) {
		return nil, invalidValue("status", status)
	}

	order, err := s.repo.GetByProtocol(ctx, protocol)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, &NotFoundError{Protocol: protocol}
	}
	if err != nil {
		return nil, &StorageError{Op: "get order", Err: err}
	}

	if !entity.CanTransition(order.Status, status) {
		return nil, &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("Ordem %s já está %s", protocol, entity.StatusLabel(order.Status)),
		}
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, &StorageError{Op: "update order", Err: err}
	}
	s.invalidate(ctx)
	return order, nil
}

// Delete removes an order permanently.
func (s *OrderService) Delete(ctx context.Context, protocol string) error {
	err := s.repo.DeleteByProtocol(ctx, protocol)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return &NotFoundError{Protocol: protocol}
	}
	if err != nil {
		return &StorageError{Op: "delete order", Err: err}
	}
	s.invalidate(ctx)
	return nil
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
