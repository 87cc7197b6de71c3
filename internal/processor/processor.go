// Package processor runs the order simulation: it validates and enriches
// incoming orders, replays them through a capacity-bounded kitchen on a
// simulated clock, and hands back the completed and rejected pools.
package processor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"brigade/internal/indexing"
	"brigade/internal/models"
	"brigade/internal/monitoring"
	"brigade/internal/store"
)

// Result is the outcome of a simulation run. The statistics accessors of
// the two stores are the only surface downstream reporting reads.
type Result struct {
	Completed *store.InMemoryStore
	Rejected  *store.InMemoryStore
}

// Processor simulates a kitchen working through a batch of orders
type Processor struct {
	kitchen  *models.Kitchen
	index    *indexing.CookTimeIndex
	strategy models.ProcessingStrategy
	logger   zerolog.Logger
	metrics  *monitoring.Collector
}

// New creates a processor for the kitchen, building its cook-time index.
// metrics may be nil.
func New(kitchen *models.Kitchen, strategy models.ProcessingStrategy, logger zerolog.Logger, metrics *monitoring.Collector) (*Processor, error) {
	logger.Info().Str("kitchen", kitchen.Name).Msg("building kitchen cook-time index")
	index, err := indexing.NewCookTimeIndex(kitchen)
	if err != nil {
		return nil, fmt.Errorf("indexing kitchen %q: %w", kitchen.Name, err)
	}
	return &Processor{
		kitchen:  kitchen,
		index:    index,
		strategy: strategy,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Run replays the orders through the kitchen. Orders missing a timestamp or
// containing no items are rejected up front; the rest are enriched with
// cook times and simulated to completion. An order the kitchen can never
// fit, or one naming an item no menu carries, aborts the whole run.
func (p *Processor) Run(orders []*models.Order) (*Result, error) {
	pending := store.NewUnboundedStore()
	processing := store.NewUnboundedStore()
	if p.kitchen.MaxConcurrentItems > 0 {
		processing = store.NewInMemoryStore(p.kitchen.MaxConcurrentItems)
	}
	completed := store.NewUnboundedStore()
	rejected := store.NewUnboundedStore()

	p.logger.Info().Int("orders", len(orders)).Msg("adding new orders to the pending queue")
	for _, order := range orders {
		if order.OrderedAt.IsZero() {
			p.logger.Warn().Str("customer", order.CustomerName).Msg("order rejected: missing timestamp")
			p.reject(order, rejected)
			continue
		}
		if order.ItemCount() == 0 {
			p.logger.Warn().Str("customer", order.CustomerName).Msg("order rejected: no items")
			p.reject(order, rejected)
			continue
		}
		if err := p.enrichCookTimes(order); err != nil {
			return nil, fmt.Errorf("kitchen %q cannot prepare order from %q: %w", p.kitchen.Name, order.CustomerName, err)
		}
		if !pending.AddOrder(order) {
			// The pending pool is unbounded; this cannot happen.
			return nil, fmt.Errorf("order from %q could not be added to the pending queue", order.CustomerName)
		}
	}

	p.logger.Info().
		Int("pending", pending.CurrentNumOrders()).
		Int("rejected", rejected.CurrentNumOrders()).
		Msg("processing orders")
	if err := p.submitAndProcess(pending, processing, completed); err != nil {
		return nil, err
	}
	p.logger.Info().Int("completed", completed.CurrentNumOrders()).Msg("all order processing complete")
	return &Result{Completed: completed, Rejected: rejected}, nil
}

func (p *Processor) reject(order *models.Order, rejected store.OrderStore) {
	order.State = models.OrderStateRejected
	rejected.AddOrder(order)
	p.metrics.RecordOrderRejection()
}

// enrichCookTimes looks up every item in the cook-time index and sets the
// order's total cook time to the slowest item: the kitchen starts all items
// of an order together, so the slowest bounds the order.
func (p *Processor) enrichCookTimes(order *models.Order) error {
	maxCookTime := 0
	for _, item := range order.Items {
		seconds, err := p.index.CookTime(item.Name)
		if err != nil {
			return err
		}
		item.CookTimeSeconds = seconds
		if seconds > maxCookTime {
			maxCookTime = seconds
		}
	}
	order.TotalCookTimeSeconds = maxCookTime
	return nil
}

// submitAndProcess drains the pending store into the processing store,
// advancing the simulated clock only when the kitchen is full, then drains
// the processing store. Submission is always attempted before time moves,
// which keeps processing-start timestamps as tight as arrivals allow.
func (p *Processor) submitAndProcess(pending, processing, completed store.OrderStore) error {
	held := pending.DequeueEarliest(p.strategy)
	if held == nil {
		return nil
	}
	// The clock starts at the first order's arrival and never rewinds.
	current := held.OrderedAt
	var err error
	for held != nil {
		if held.ItemCount() > processing.MaxAllowedItems() {
			// No kitchen resize happens mid-run, so this order can never
			// start; partial processing of an order is not a thing.
			return fmt.Errorf("kitchen %q is too small to process the order from %q: %d items, capacity %d",
				p.kitchen.Name, held.CustomerName, held.ItemCount(), processing.MaxAllowedItems())
		}
		if processing.SubmitOrder(held, current) {
			p.logger.Debug().
				Str("customer", held.CustomerName).
				Time("started_at", held.ProcessingStartedAt).
				Msg("order submitted for processing")
			held = pending.DequeueEarliest(p.strategy)
			if held != nil && held.OrderedAt.After(current) {
				current = held.OrderedAt
			}
			continue
		}
		// The kitchen is full: harvest finished orders, then retry the
		// held order. It stays in memory rather than going back to pending.
		current, err = p.harvest(processing, completed, current)
		if err != nil {
			return err
		}
	}
	// Pending is exhausted; finish whatever is still cooking.
	for processing.CurrentNumOrders() > 0 {
		current, err = p.harvest(processing, completed, current)
		if err != nil {
			return err
		}
	}
	return nil
}

// harvest advances the clock in whole-minute steps until at least one
// in-flight order completes, and moves the finished batch to the completed
// store. The step is computed from the earliest in-flight completion time,
// so the loop terminates regardless of cook times; the resulting timestamps
// match minute-by-minute stepping exactly.
func (p *Processor) harvest(processing, completed store.OrderStore, current time.Time) (time.Time, error) {
	for processing.CurrentNumOrders() > 0 {
		next, ok := processing.NextCompletionTime()
		if !ok {
			return current, fmt.Errorf("processing store holds %d orders that never started", processing.CurrentNumOrders())
		}
		if next.After(current) {
			step := ceilToMinute(next.Sub(current))
			current = current.Add(step)
			p.metrics.RecordClockAdvance(step)
		}
		batch := processing.ClearFinishedOrders(current)
		if len(batch) == 0 {
			continue
		}
		for _, order := range batch {
			if !completed.AddOrder(order) {
				return current, fmt.Errorf("completed order from %q could not be stored", order.CustomerName)
			}
			p.metrics.RecordOrderCompletion(order)
			p.logger.Debug().
				Str("customer", order.CustomerName).
				Time("completed_at", order.CompletedAt).
				Msg("order completed")
		}
		return current, nil
	}
	return current, nil
}

// ceilToMinute rounds a positive duration up to the next whole minute
func ceilToMinute(d time.Duration) time.Duration {
	minutes := d / time.Minute
	if d%time.Minute != 0 {
		minutes++
	}
	return minutes * time.Minute
}
