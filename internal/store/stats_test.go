package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"brigade/internal/models"
)

// completedFixture builds a store holding three completed orders the way a
// simulation run leaves them.
func completedFixture(t *testing.T) (*InMemoryStore, []*models.Order) {
	t.Helper()
	s := NewUnboundedStore()

	pizza := func(price int) *models.OrderItem {
		item := models.NewOrderItem("Margherita Pizza", price)
		item.CookTimeSeconds = 720
		return item
	}
	salad := func(price int) *models.OrderItem {
		item := models.NewOrderItem("Caesar Salad", price)
		item.CookTimeSeconds = 300
		return item
	}

	a := models.NewOrder(baseTime, "alice", "ubereats", []*models.OrderItem{pizza(1200), salad(800)})
	b := models.NewOrder(baseTime.Add(time.Minute), "bob", "doordash", []*models.OrderItem{pizza(1200)})
	c := models.NewOrder(baseTime.Add(2*time.Minute), "carol", "ubereats", []*models.OrderItem{salad(800)})

	starts := map[*models.Order]time.Duration{a: 0, b: 3 * time.Minute, c: 2 * time.Minute}
	for _, order := range []*models.Order{a, b, c} {
		order.TotalCookTimeSeconds = 720
		order.ProcessingStartedAt = order.OrderedAt.Add(starts[order])
		order.CompletedAt = order.CompletionTime()
		order.State = models.OrderStateComplete
		assert.True(t, s.AddOrder(order))
	}
	return s, []*models.Order{a, b, c}
}

func TestTotalRevenue(t *testing.T) {
	s, _ := completedFixture(t)
	assert.Equal(t, 2000+1200+800, s.TotalRevenue())
}

func TestRevenueByItemAndService(t *testing.T) {
	s, _ := completedFixture(t)

	assert.Equal(t, map[string]int{
		"Margherita Pizza": 2400,
		"Caesar Salad":     1600,
	}, s.RevenueByItem())

	assert.Equal(t, map[string]int{
		"ubereats": 2800,
		"doordash": 1200,
	}, s.RevenueByService())
}

func TestItemFrequencyCount(t *testing.T) {
	s, _ := completedFixture(t)
	assert.Equal(t, map[string]int{
		"Margherita Pizza": 2,
		"Caesar Salad":     2,
	}, s.ItemFrequencyCount())
}

func TestOrdersByPrice(t *testing.T) {
	s, orders := completedFixture(t)
	a, b, c := orders[0], orders[1], orders[2]

	entries := s.OrdersByPrice()
	assert.Len(t, entries, 3)
	assert.Same(t, c, entries[0].Order)
	assert.Equal(t, 800, entries[0].PriceCents)
	assert.Same(t, b, entries[1].Order)
	assert.Same(t, a, entries[2].Order)
	assert.Equal(t, 2000, entries[2].PriceCents)
}

func TestOrdersByPendingDuration(t *testing.T) {
	s, orders := completedFixture(t)
	a, b, c := orders[0], orders[1], orders[2]

	entries := s.OrdersByPendingDuration()
	assert.Len(t, entries, 3)
	assert.Same(t, a, entries[0].Order)
	assert.Equal(t, 0, entries[0].PendingMinutes)
	assert.Same(t, c, entries[1].Order)
	assert.Equal(t, 2, entries[1].PendingMinutes)
	assert.Same(t, b, entries[2].Order)
	assert.Equal(t, 3, entries[2].PendingMinutes)
}

func TestOrderStateCountsByTime(t *testing.T) {
	s, orders := completedFixture(t)

	rows := s.OrderStateCountsByTime()
	assert.NotEmpty(t, rows)
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].Time.Before(rows[i].Time), "rows are time-sorted")
	}

	// Each order contributes each milestone exactly once.
	totals := make(map[models.OrderState]int)
	for _, row := range rows {
		for state, count := range row.Counts {
			totals[state] += count
		}
	}
	assert.Equal(t, len(orders), totals[models.OrderStateCreated])
	assert.Equal(t, len(orders), totals[models.OrderStateProcessing])
	assert.Equal(t, len(orders), totals[models.OrderStateComplete])

	// The first row is the earliest arrival, with only a creation there.
	first := rows[0]
	assert.True(t, first.Time.Equal(baseTime))
	assert.Equal(t, 1, first.Counts[models.OrderStateCreated])
}

func TestStatsReadersDoNotMutate(t *testing.T) {
	s, _ := completedFixture(t)
	before := s.CurrentNumOrders()

	s.TotalRevenue()
	s.RevenueByItem()
	s.RevenueByService()
	s.ItemFrequencyCount()
	s.OrdersByPrice()
	s.OrdersByPendingDuration()
	s.OrderStateCountsByTime()

	assert.Equal(t, before, s.CurrentNumOrders())
	assert.Equal(t, before, len(s.OrdersByPrice()))
}
