package query

import (
	"sort"
	"time"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
)

// Client is the derived clients-page row. It is a projection over orders
// sharing a phone number, not a persisted entity.
type Client struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	TotalOrders int       `json:"total_orders"`
	LastOrderAt time.Time `json:"last_order_at"`
}

// GroupClients aggregates orders by phone. Name and email come from the
// group's oldest order (first by insertion order), last order is the max
// created_at in the group. Rows come back sorted by name, then phone.
func GroupClients(orders []entity.ServiceOrder) []Client {
	byPhone := make(map[string]*Client)
	for _, o := range orders {
		c, ok := byPhone[o.ClientPhone]
		if !ok {
			c = &Client{
				Name:        o.ClientName,
				Phone:       o.ClientPhone,
				Email:       o.ClientEmail,
				LastOrderAt: o.CreatedAt,
			}
			byPhone[o.ClientPhone] = c
		}
		c.TotalOrders++
		if o.CreatedAt.After(c.LastOrderAt) {
			c.LastOrderAt = o.CreatedAt
		}
	}

	clients := make([]Client, 0, len(byPhone))
	for _, c := range byPhone {
		clients = append(clients, *c)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Name != clients[j].Name {
			return clients[i].Name < clients[j].Name
		}
		return clients[i].Phone < clients[j].Phone
	})
	return clients
}
