package handler

import "github.com/EvaneiWFreitas/sisManutencao/internal/service"

// Handlers is the HTTP layer handed to the router.
type Handlers struct {
	Order *OrderHandler
	Admin *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Order: NewOrderHandler(services.Order),
		Admin: NewAdminHandler(services.Report),
	}
}
