package service

import (
	"github.com/EvaneiWFreitas/sisManutencao/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Services is the business layer handed to the handlers.
type Services struct {
	Order  *OrderService
	Report *ReportService
}

// NewServices wires the services. rdb may be nil; the derived views then read
// straight from the database on every request.
func NewServices(repos *repository.Repositories, rdb *redis.Client) *Services {
	cache := NewReportCache(rdb)
	return &Services{
		Order:  NewOrderService(repos.Order, cache),
		Report: NewReportService(repos.Order, cache),
	}
}
