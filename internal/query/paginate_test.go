package query

import (
	"fmt"
	"testing"

	"github.com/EvaneiWFreitas/sisManutencao/internal/entity"
)

func nOrders(n int) []entity.ServiceOrder {
	orders := make([]entity.ServiceOrder, n)
	for i := range orders {
		orders[i] = entity.ServiceOrder{
			ID:             uint(i + 1),
			ProtocolNumber: fmt.Sprintf("TS2024%04d", i+1),
		}
	}
	return orders
}

func TestPageSlices(t *testing.T) {
	orders := nOrders(23)

	page1 := Page(orders, 1, 10)
	if len(page1) != 10 || page1[0].ID != 1 || page1[9].ID != 10 {
		t.Fatalf("page 1 should be records [0,10), got %d records starting at %d", len(page1), page1[0].ID)
	}

	page3 := Page(orders, 3, 10)
	if len(page3) != 3 || page3[0].ID != 21 || page3[2].ID != 23 {
		t.Fatalf("page 3 should be records [20,23), got %d records", len(page3))
	}

	page4 := Page(orders, 4, 10)
	if len(page4) != 0 {
		t.Fatalf("page 4 should be empty, got %d records", len(page4))
	}
}

func TestPageBoundsClipping(t *testing.T) {
	tests := []struct {
		page, size, total    int
		wantStart, wantEnd   int
	}{
		{1, 10, 23, 0, 10},
		{3, 10, 23, 20, 23},
		{4, 10, 23, 23, 23},
		{1, 10, 0, 0, 0},
		{0, 10, 23, 0, 10},  // page below 1 clamps to 1
		{1, 0, 23, 0, 10},   // size below 1 uses the default
		{99, 10, 23, 23, 23},
	}
	for _, tt := range tests {
		start, end := PageBounds(tt.page, tt.size, tt.total)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Fatalf("PageBounds(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tt.page, tt.size, tt.total, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{23, 10, 3},
		{20, 10, 2},
		{0, 10, 0},
		{1, 10, 1},
		{10, 0, 1}, // size below 1 uses the default
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}
