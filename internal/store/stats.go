package store

import (
	"sort"
	"time"

	"brigade/internal/models"
)

// PriceEntry pairs an order with its total price for the sorted price view.
type PriceEntry struct {
	PriceCents int
	Order      *models.Order
}

// PendingEntry pairs an order with how long it waited before processing,
// in whole minutes.
type PendingEntry struct {
	PendingMinutes int
	Order          *models.Order
}

// StateCountRow counts how many orders entered each state at one instant.
type StateCountRow struct {
	Time   time.Time
	Counts map[models.OrderState]int
}

// TotalRevenue sums the total price of every order in the store
func (s *InMemoryStore) TotalRevenue() int {
	total := 0
	for _, order := range s.ordersByTime {
		total += order.TotalPriceCents
	}
	return total
}

// RevenueByItem sums item prices grouped by item name
func (s *InMemoryStore) RevenueByItem() map[string]int {
	revenue := make(map[string]int)
	for _, order := range s.ordersByTime {
		for _, item := range order.Items {
			revenue[item.Name] += item.PriceCents
		}
	}
	return revenue
}

// RevenueByService sums order totals grouped by ordering service
func (s *InMemoryStore) RevenueByService() map[string]int {
	revenue := make(map[string]int)
	for _, order := range s.ordersByTime {
		revenue[order.Service] += order.TotalPriceCents
	}
	return revenue
}

// ItemFrequencyCount counts how many times each item name was ordered
func (s *InMemoryStore) ItemFrequencyCount() map[string]int {
	counts := make(map[string]int)
	for _, order := range s.ordersByTime {
		for _, item := range order.Items {
			counts[item.Name]++
		}
	}
	return counts
}

// OrdersByPrice returns every order keyed and sorted by total price, ties
// broken by the order's natural ordering.
func (s *InMemoryStore) OrdersByPrice() []PriceEntry {
	entries := make([]PriceEntry, 0, len(s.ordersByTime))
	for _, order := range s.ordersByTime {
		entries = append(entries, PriceEntry{PriceCents: order.TotalPriceCents, Order: order})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PriceCents != entries[j].PriceCents {
			return entries[i].PriceCents < entries[j].PriceCents
		}
		return entries[i].Order.Less(entries[j].Order)
	})
	return entries
}

// OrdersByPendingDuration returns every processed order keyed and sorted by
// the minutes it spent pending, ties broken by the order's natural ordering.
func (s *InMemoryStore) OrdersByPendingDuration() []PendingEntry {
	entries := make([]PendingEntry, 0, len(s.ordersByTime))
	for _, order := range s.ordersByTime {
		if !order.HasStartedProcessing() {
			continue
		}
		minutes := int(order.PendingDuration() / time.Minute)
		entries = append(entries, PendingEntry{PendingMinutes: minutes, Order: order})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PendingMinutes != entries[j].PendingMinutes {
			return entries[i].PendingMinutes < entries[j].PendingMinutes
		}
		return entries[i].Order.Less(entries[j].Order)
	})
	return entries
}

// OrderStateCountsByTime builds a time-bucketed table of state transitions:
// for every instant some order was created, started processing or
// completed, how many orders hit that state right then. Each order
// contributes each of its milestones exactly once.
func (s *InMemoryStore) OrderStateCountsByTime() []StateCountRow {
	buckets := make(map[time.Time]map[models.OrderState]int)
	bump := func(at time.Time, state models.OrderState) {
		counts, ok := buckets[at]
		if !ok {
			counts = make(map[models.OrderState]int)
			buckets[at] = counts
		}
		counts[state]++
	}
	for _, order := range s.ordersByTime {
		bump(order.OrderedAt, models.OrderStateCreated)
		if order.HasStartedProcessing() {
			bump(order.ProcessingStartedAt, models.OrderStateProcessing)
		}
		if !order.CompletedAt.IsZero() {
			bump(order.CompletedAt, models.OrderStateComplete)
		}
	}
	rows := make([]StateCountRow, 0, len(buckets))
	for at, counts := range buckets {
		rows = append(rows, StateCountRow{Time: at, Counts: counts})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Time.Before(rows[j].Time) })
	return rows
}
