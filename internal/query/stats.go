package query

import (
	"sort"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
)

// Flat rate the shop bills per completed order; the financial report is a
// simulation, not an invoicing system.
const revenuePerOrder = 150

// StatusCounts counts orders per status.
func StatusCounts(orders []entity.ServiceOrder) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// ServiceCounts counts orders per equipment type.
func ServiceCounts(orders []entity.ServiceOrder) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.EquipmentType]++
	}
	return counts
}

// MostCommonService returns the equipment type with the highest count. Ties
// break to the lexically smallest type so the answer is stable. Empty input
// yields "".
func MostCommonService(orders []entity.ServiceOrder) string {
	counts := ServiceCounts(orders)
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	best := ""
	bestCount := 0
	for _, t := range types {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// MonthlyRow is one month of the monthly report, month formatted as YYYY-MM.
type MonthlyRow struct {
	Month           string `json:"month"`
	TotalOrders     int    `json:"total_orders"`
	CompletedOrders int    `json:"completed_orders"`
}

// Monthly aggregates orders per calendar month, newest month first, at most
// the latest 12 months that have any orders.
func Monthly(orders []entity.ServiceOrder) []MonthlyRow {
	totals := make(map[string]*MonthlyRow)
	for _, o := range orders {
		month := o.CreatedAt.Format("2006-01")
		row, ok := totals[month]
		if !ok {
			row = &MonthlyRow{Month: month}
			totals[month] = row
		}
		row.TotalOrders++
		if o.Status == entity.StatusCompleted {
			row.CompletedOrders++
		}
	}
	return sortMonthly(totals)
}

// FinancialRow is one month of the simulated financial report.
type FinancialRow struct {
	Month            string `json:"month"`
	TotalOrders      int    `json:"total_orders"`
	EstimatedRevenue int    `json:"estimated_revenue"`
}

// Financial aggregates completed orders per month with the simulated flat
// revenue, newest month first, at most 12 months.
func Financial(orders []entity.ServiceOrder) []FinancialRow {
	totals := make(map[string]*MonthlyRow)
	for _, o := range orders {
		if o.Status != entity.StatusCompleted {
			continue
		}
		month := o.CreatedAt.Format("2006-01")
		row, ok := totals[month]
		if !ok {
			row = &MonthlyRow{Month: month}
			totals[month] = row
		}
		row.TotalOrders++
	}
	rows := sortMonthly(totals)
	out := make([]FinancialRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, FinancialRow{
			Month:            r.Month,
			TotalOrders:      r.TotalOrders,
			EstimatedRevenue: r.TotalOrders * revenuePerOrder,
		})
	}
	return out
}

func sortMonthly(totals map[string]*MonthlyRow) []MonthlyRow {
	rows := make([]MonthlyRow, 0, len(totals))
	for _, r := range totals {
		rows = append(rows, *r)
	}
	// YYYY-MM sorts lexically, newest first.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })
	if len(rows) > 12 {
		rows = rows[:12]
	}
	return rows
}

// ServiceRow is one equipment type in the services report.
type ServiceRow struct {
	EquipmentType string `json:"equipment_type"`
	Label         string `json:"label"`
	Total         int    `json:"total"`
	Completed     int    `json:"completed"`
}

// Services aggregates per equipment type, ordered by type key.
func Services(orders []entity.ServiceOrder) []ServiceRow {
	totals := make(map[string]*ServiceRow)
	for _, o := range orders {
		row, ok := totals[o.EquipmentType]
		if !ok {
			row = &ServiceRow{
				EquipmentType: o.EquipmentType,
				Label:         entity.EquipmentLabel(o.EquipmentType),
			}
			totals[o.EquipmentType] = row
		}
		row.Total++
		if o.Status == entity.StatusCompleted {
			row.Completed++
		}
	}
	rows := make([]ServiceRow, 0, len(totals))
	for _, r := range totals {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EquipmentType < rows[j].EquipmentType })
	return rows
}

// GeneralReport summarizes completed work: how many orders were completed,
// for how many distinct clients, and the average days from intake to the
// last update.
type GeneralReport struct {
	TotalOrders        int     `json:"total_orders"`
	TotalClients       int     `json:"total_clients"`
	AvgServiceTimeDays float64 `json:"avg_service_time"`
}

// General computes the general report over completed orders only.
func General(orders []entity.ServiceOrder) GeneralReport {
	var report GeneralReport
	phones := make(map[string]struct{})
	var totalDays float64
	for _, o := range orders {
		if o.Status != entity.StatusCompleted {
			continue
		}
		report.TotalOrders++
		phones[o.ClientPhone] = struct{}{}
		totalDays += o.UpdatedAt.Sub(o.CreatedAt).Hours() / 24
	}
	report.TotalClients = len(phones)
	if report.TotalOrders > 0 {
		report.AvgServiceTimeDays = totalDays / float64(report.TotalOrders)
	}
	return report
}
