// Package store holds orders in time-sorted, capacity-aware pools and
// exposes the operations the scheduling loop and the statistics reducers
// need.
package store

import (
	"math"
	"sort"
	"time"

	"brigade/internal/models"
)

// MaxItemsUnbounded configures a store with no item ceiling.
const MaxItemsUnbounded = math.MaxInt

// OrderStore is the data access layer for orders and their stats.
type OrderStore interface {
	// AddOrder adds an order without touching its state. Returns false,
	// with no mutation, if the store's item ceiling would be exceeded.
	AddOrder(order *models.Order) bool
	// SubmitOrder admits an order for processing at submitTime, stamping
	// its processing start and moving it to the processing state. Returns
	// false, with no mutation, on a capacity refusal or if submitTime
	// precedes the order's arrival.
	SubmitOrder(order *models.Order, submitTime time.Time) bool
	// DequeueEarliest removes and returns the next order under the given
	// strategy, or nil if the store is empty.
	DequeueEarliest(strategy models.ProcessingStrategy) *models.Order
	// ClearFinishedOrders removes every order whose completion time is at
	// or before queryTime, stamping completion, and returns the batch.
	ClearFinishedOrders(queryTime time.Time) []*models.Order
	// NextCompletionTime returns the earliest completion time over orders
	// currently processing, or false if none are processing.
	NextCompletionTime() (time.Time, bool)

	CurrentNumOrders() int
	CurrentNumItems() int
	MaxAllowedItems() int

	TotalRevenue() int
	RevenueByItem() map[string]int
	RevenueByService() map[string]int
	ItemFrequencyCount() map[string]int
	OrdersByPrice() []PriceEntry
	OrdersByPendingDuration() []PendingEntry
	OrderStateCountsByTime() []StateCountRow
}

// InMemoryStore is an in-memory OrderStore: a sorted multimap from arrival
// time to orders, with running order and item counters. Multiple orders may
// share a timestamp; ties sort by the order's natural ordering.
//
// A store exclusively owns the orders it holds. Orders move between stores
// by removal and re-insertion, never by copying, so the counters of all
// pools stay consistent.
type InMemoryStore struct {
	maxAllowedItems int
	numOrders       int
	numItems        int
	ordersByTime    []*models.Order
}

// NewInMemoryStore creates a store with the given item ceiling
func NewInMemoryStore(maxAllowedItems int) *InMemoryStore {
	return &InMemoryStore{maxAllowedItems: maxAllowedItems}
}

// NewUnboundedStore creates a store with no item ceiling
func NewUnboundedStore() *InMemoryStore {
	return NewInMemoryStore(MaxItemsUnbounded)
}

// insert keeps ordersByTime sorted by (OrderedAt, CustomerName, Service).
// Equal orders keep insertion order.
func (s *InMemoryStore) insert(order *models.Order) {
	i := sort.Search(len(s.ordersByTime), func(i int) bool {
		return order.Less(s.ordersByTime[i])
	})
	s.ordersByTime = append(s.ordersByTime, nil)
	copy(s.ordersByTime[i+1:], s.ordersByTime[i:])
	s.ordersByTime[i] = order
}

// hasRoomFor reports whether numItems more items fit under the ceiling
func (s *InMemoryStore) hasRoomFor(numItems int) bool {
	return numItems <= s.maxAllowedItems-s.numItems
}

// AddOrder implements OrderStore
func (s *InMemoryStore) AddOrder(order *models.Order) bool {
	numItems := order.ItemCount()
	if !s.hasRoomFor(numItems) {
		return false
	}
	s.insert(order)
	s.numOrders++
	s.numItems += numItems
	return true
}

// SubmitOrder implements OrderStore
func (s *InMemoryStore) SubmitOrder(order *models.Order, submitTime time.Time) bool {
	numItems := order.ItemCount()
	if !s.hasRoomFor(numItems) || submitTime.Before(order.OrderedAt) {
		return false
	}
	order.ProcessingStartedAt = submitTime
	order.State = models.OrderStateProcessing
	s.insert(order)
	s.numOrders++
	s.numItems += numItems
	return true
}

// DequeueEarliest implements OrderStore. Only first-come-first-served is
// implemented today; the strategy parameter keeps the call site stable when
// more arrive.
func (s *InMemoryStore) DequeueEarliest(strategy models.ProcessingStrategy) *models.Order {
	// Currently there is only one strategy, and ordersByTime is already
	// sorted the way it wants.
	if len(s.ordersByTime) == 0 {
		return nil
	}
	order := s.ordersByTime[0]
	s.ordersByTime = s.ordersByTime[1:]
	s.numOrders--
	s.numItems -= order.ItemCount()
	return order
}

// ClearFinishedOrders implements OrderStore. It scans every held order, so
// it is the only O(n) operation; the scheduling loop calls it once per
// clock advance. Orders that never started processing have no completion
// time and are left alone.
func (s *InMemoryStore) ClearFinishedOrders(queryTime time.Time) []*models.Order {
	var finished []*models.Order
	remaining := s.ordersByTime[:0]
	for _, order := range s.ordersByTime {
		if !order.HasStartedProcessing() || order.CompletionTime().After(queryTime) {
			remaining = append(remaining, order)
			continue
		}
		order.CompletedAt = order.CompletionTime()
		order.State = models.OrderStateComplete
		s.numOrders--
		s.numItems -= order.ItemCount()
		finished = append(finished, order)
	}
	s.ordersByTime = remaining
	return finished
}

// NextCompletionTime implements OrderStore
func (s *InMemoryStore) NextCompletionTime() (time.Time, bool) {
	var next time.Time
	found := false
	for _, order := range s.ordersByTime {
		if !order.HasStartedProcessing() {
			continue
		}
		done := order.CompletionTime()
		if !found || done.Before(next) {
			next = done
			found = true
		}
	}
	return next, found
}

// CurrentNumOrders returns the number of orders in the store
func (s *InMemoryStore) CurrentNumOrders() int {
	return s.numOrders
}

// CurrentNumItems returns the total item count across held orders
func (s *InMemoryStore) CurrentNumItems() int {
	return s.numItems
}

// MaxAllowedItems returns the store's item ceiling
func (s *InMemoryStore) MaxAllowedItems() int {
	return s.maxAllowedItems
}
