// Package query derives read-side views from an insertion-ordered sequence of
// service orders. Nothing here touches storage; every consumer (orders page,
// dashboard, clients page, reports) goes through these functions so they all
// observe the same filter and grouping rules.
package query

import (
	"strings"
	"time"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
)

// Date bucket names recognized by the orders page filter.
const (
	BucketToday = "today"
	BucketWeek  = "week"
	BucketMonth = "month"
)

// Filters is the orders-list filter set. Empty values match everything and
// the supplied filters are conjunctive.
type Filters struct {
	Search        string
	Status        string
	EquipmentType string
	DateBucket    string
}

// Apply returns the orders matching every supplied filter, preserving order.
func Apply(orders []entity.ServiceOrder, f Filters, now time.Time) []entity.ServiceOrder {
	out := make([]entity.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if Matches(o, f, now) {
			out = append(out, o)
		}
	}
	return out
}

// Matches reports whether one order satisfies every supplied filter.
func Matches(o entity.ServiceOrder, f Filters, now time.Time) bool {
	if f.Search != "" && !matchesSearch(o, f.Search) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.EquipmentType != "" && o.EquipmentType != f.EquipmentType {
		return false
	}
	if f.DateBucket != "" && !InDateBucket(o.CreatedAt, f.DateBucket, now) {
		return false
	}
	return true
}

// matchesSearch checks the protocol number, client name, the equipment type's
// display label and the brand, all case-insensitively.
func matchesSearch(o entity.ServiceOrder, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(o.ProtocolNumber), term) ||
		strings.Contains(strings.ToLower(o.ClientName), term) ||
		strings.Contains(strings.ToLower(entity.EquipmentLabel(o.EquipmentType)), term) ||
		strings.Contains(strings.ToLower(o.EquipmentBrand), term)
}

// InDateBucket reports whether t falls in the named bucket relative to now:
// today means the same calendar day, week the trailing 7x24h window, month the
// same calendar month and year. Unknown buckets match everything.
func InDateBucket(t time.Time, bucket string, now time.Time) bool {
	switch bucket {
	case BucketToday:
		ty, tm, td := t.Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	case BucketWeek:
		return !t.Before(now.Add(-7 * 24 * time.Hour))
	case BucketMonth:
		return t.Month() == now.Month() && t.Year() == now.Year()
	default:
		return true
	}
}

// Recent returns the last n orders by insertion order, most recent first.
func Recent(orders []entity.ServiceOrder, n int) []entity.ServiceOrder {
	if n > len(orders) {
		n = len(orders)
	}
	out := make([]entity.ServiceOrder, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		out = append(out, orders[i])
	}
	return out
}
