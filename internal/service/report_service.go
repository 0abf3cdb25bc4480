package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
	"github.com/EvaneiWFreitas/sisManutencao/internal/query"
	"github.com/EvaneiWFreitas/sisManutencao/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Report kinds accepted by the reports endpoint. Anything else falls back to
// the general report, as the original API did.
const (
	ReportGeneral   = "general"
	ReportMonthly   = "monthly"
	ReportServices  = "services"
	ReportFinancial = "financial"
)

const cacheTTL = time.Minute

var cacheKeys = []string{
	"techservice:dashboard",
	"techservice:clients",
	"techservice:reports:" + ReportGeneral,
	"techservice:reports:" + ReportMonthly,
	"techservice:reports:" + ReportServices,
	"techservice:reports:" + ReportFinancial,
}

// ReportCache is a read-through cache for the derived admin views. A nil
// client disables it; reads then always hit the store.
type ReportCache struct {
	rdb *redis.Client
}

func NewReportCache(rdb *redis.Client) *ReportCache {
	return &ReportCache{rdb: rdb}
}

func (c *ReportCache) get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *ReportCache) set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, cacheTTL)
}

// Invalidate drops every cached view. Called after each successful mutation.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, cacheKeys...)
}

// DashboardData is the admin dashboard payload. Field names match what the
// admin page consumes.
type DashboardData struct {
	TotalOrders      int                   `json:"totalOrders"`
	PendingOrders    int                   `json:"pendingOrders"`
	InProgressOrders int                   `json:"inProgressOrders"`
	CompletedOrders  int                   `json:"completedOrders"`
	CancelledOrders  int                   `json:"cancelledOrders"`
	StatusCounts     map[string]int        `json:"statusCounts"`
	ServiceCounts    map[string]int        `json:"serviceCounts"`
	MostCommon       string                `json:"mostCommonService"`
	RecentOrders     []entity.ServiceOrder `json:"recentOrders"`
}

// ReportService serves the derived admin reads: dashboard, clients, reports.
type ReportService struct {
	repo  *repository.OrderRepository
	cache *ReportCache
}

func NewReportService(repo *repository.OrderRepository, cache *ReportCache) *ReportService {
	return &ReportService{repo: repo, cache: cache}
}

const recentOrdersLimit = 5

// Dashboard returns the order totals, per-status and per-type counts and the
// five most recent orders.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardData, error) {
	var cached DashboardData
	if s.cache.get(ctx, cacheKeys[0], &cached) {
		return &cached, nil
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}

	statusCounts := query.StatusCounts(orders)
	data := &DashboardData{
		TotalOrders:      len(orders),
		PendingOrders:    statusCounts[entity.StatusPending],
		InProgressOrders: statusCounts[entity.StatusInProgress],
		CompletedOrders:  statusCounts[entity.StatusCompleted],
		CancelledOrders:  statusCounts[entity.StatusCancelled],
		StatusCounts:     statusCounts,
		ServiceCounts:    query.ServiceCounts(orders),
		MostCommon:       entity.EquipmentLabel(query.MostCommonService(orders)),
		RecentOrders:     query.Recent(orders, recentOrdersLimit),
	}
	s.cache.set(ctx, cacheKeys[0], data)
	return data, nil
}

// Clients returns the derived client rows.
func (s *ReportService) Clients(ctx context.Context) ([]query.Client, error) {
	var cached []query.Client
	if s.cache.get(ctx, cacheKeys[1], &cached) {
		return cached, nil
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}
	clients := query.GroupClients(orders)
	s.cache.set(ctx, cacheKeys[1], clients)
	return clients, nil
}

// Report produces the aggregate for the requested kind.
func (s *ReportService) Report(ctx context.Context, kind string) (any, error) {
	switch kind {
	case ReportMonthly, ReportServices, ReportFinancial:
	default:
		kind = ReportGeneral
	}

	key := "techservice:reports:" + kind
	var cached json.RawMessage
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}

	var data any
	switch kind {
	case ReportMonthly:
		data = query.Monthly(orders)
	case ReportServices:
		data = query.Services(orders)
	case ReportFinancial:
		data = query.Financial(orders)
	default:
		data = query.General(orders)
	}
	s.cache.set(ctx, key, data)
	return data, nil
}
