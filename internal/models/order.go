package models

import (
	"fmt"
	"time"
)

// OrderState represents the possible states of an order
type OrderState string

const (
	// OrderStateCreated means the order has been received but not started
	OrderStateCreated OrderState = "created"
	// OrderStateRejected means the order failed validation and will never be cooked
	OrderStateRejected OrderState = "rejected"
	// OrderStateProcessing means the kitchen is cooking the order
	OrderStateProcessing OrderState = "processing"
	// OrderStateComplete means every item of the order has finished cooking
	OrderStateComplete OrderState = "complete"
)

// ItemState represents the possible states of a single order item.
// Tracked per item but not yet driving scheduling; orders are started and
// finished as a whole.
type ItemState string

const (
	ItemStatePending  ItemState = "pending"
	ItemStateCooking  ItemState = "cooking"
	ItemStateFinished ItemState = "finished"
)

// OrderItem represents an item in an order
type OrderItem struct {
	Name       string
	PriceCents int
	// CookTimeSeconds is unset until the order is enriched from the
	// kitchen's cook-time index.
	CookTimeSeconds int
	State           ItemState
}

// NewOrderItem creates a new order item in the pending state
func NewOrderItem(name string, priceCents int) *OrderItem {
	return &OrderItem{
		Name:       name,
		PriceCents: priceCents,
		State:      ItemStatePending,
	}
}

// Order represents a food order moving through the simulation
type Order struct {
	// OrderedAt is when the order was submitted to the system. The zero
	// value means the input record carried no timestamp, which is a
	// rejection condition.
	OrderedAt    time.Time
	CustomerName string
	// Service is the food ordering channel the order came from.
	Service string
	Items   []*OrderItem
	// TotalPriceCents is the sum of item prices, fixed at construction.
	TotalPriceCents int
	// TotalCookTimeSeconds is the max over item cook times: the kitchen
	// starts every item of an order at once, so the slowest item bounds
	// the order.
	TotalCookTimeSeconds int
	ProcessingStartedAt  time.Time
	CompletedAt          time.Time
	State                OrderState
}

// NewOrder creates a new order in the created state and derives its total price
func NewOrder(orderedAt time.Time, customerName, service string, items []*OrderItem) *Order {
	total := 0
	for _, item := range items {
		total += item.PriceCents
	}
	return &Order{
		OrderedAt:       orderedAt,
		CustomerName:    customerName,
		Service:         service,
		Items:           items,
		TotalPriceCents: total,
		State:           OrderStateCreated,
	}
}

// ItemCount returns the number of items in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// Less orders by (OrderedAt, CustomerName, Service). This is the natural
// ordering the store uses for deterministic first-come-first-served
// tie-breaking.
func (o *Order) Less(other *Order) bool {
	if !o.OrderedAt.Equal(other.OrderedAt) {
		return o.OrderedAt.Before(other.OrderedAt)
	}
	if o.CustomerName != other.CustomerName {
		return o.CustomerName < other.CustomerName
	}
	return o.Service < other.Service
}

// CookDuration returns the order's total cook time as a duration
func (o *Order) CookDuration() time.Duration {
	return time.Duration(o.TotalCookTimeSeconds) * time.Second
}

// HasStartedProcessing reports whether the order was ever submitted for processing
func (o *Order) HasStartedProcessing() bool {
	return !o.ProcessingStartedAt.IsZero()
}

// CompletionTime returns when the order finishes cooking. Calling it on an
// order that never started processing is a protocol violation, so it panics
// rather than returning a wrong timestamp.
func (o *Order) CompletionTime() time.Time {
	if !o.HasStartedProcessing() {
		panic(fmt.Sprintf("order %q (%s) has no processing start time", o.CustomerName, o.Service))
	}
	return o.ProcessingStartedAt.Add(o.CookDuration())
}

// PendingDuration returns how long the order waited between arrival and
// the start of processing.
func (o *Order) PendingDuration() time.Duration {
	return o.ProcessingStartedAt.Sub(o.OrderedAt)
}
