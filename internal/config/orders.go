package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"brigade/internal/models"
)

// orderTimeLayout matches the order feed's timestamp format.
const orderTimeLayout = "2006-01-02 15:04:05"

// JSON records for the order feed:
// [{"ordered_at": "...", "name": ..., "service": ..., "items": [{"name": ..., "quantity": ..., "price_per_unit": ...}]}]
type orderItemRecord struct {
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	PricePerUnitCents int    `json:"price_per_unit"`
}

type orderRecord struct {
	OrderedAt string            `json:"ordered_at"`
	Name      string            `json:"name"`
	Service   string            `json:"service"`
	Items     []orderItemRecord `json:"items"`
}

// LoadOrders parses the order feed into Order records. Orders with a
// missing timestamp or no items are kept (with a zero timestamp or empty
// item list) so the processor can route them to the rejected pool; a
// malformed timestamp fails the load. An item's quantity expands into that
// many order items, each at the per-unit price.
func LoadOrders(path string) ([]*models.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading orders %s: %w", path, err)
	}
	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing orders %s: %w", path, err)
	}

	orders := make([]*models.Order, 0, len(records))
	for i, rec := range records {
		var orderedAt time.Time
		if rec.OrderedAt != "" {
			orderedAt, err = time.Parse(orderTimeLayout, rec.OrderedAt)
			if err != nil {
				return nil, fmt.Errorf("order %d: invalid ordered_at %q: %w", i, rec.OrderedAt, err)
			}
		}
		var items []*models.OrderItem
		for _, itemRec := range rec.Items {
			quantity := itemRec.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			for n := 0; n < quantity; n++ {
				items = append(items, models.NewOrderItem(itemRec.Name, itemRec.PricePerUnitCents))
			}
		}
		orders = append(orders, models.NewOrder(orderedAt, rec.Name, rec.Service, items))
	}
	return orders, nil
}
