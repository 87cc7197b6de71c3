package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := Load("testdata/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "downtown", cfg.Kitchen.Name)
	assert.Equal(t, 4, cfg.Kitchen.MaxConcurrentItems)
	assert.Equal(t, "testdata/kitchens.json", cfg.Kitchen.CatalogPath)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "configs/kitchens.json", cfg.Kitchen.CatalogPath)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadKitchenMenus(t *testing.T) {
	menusByKitchen, err := LoadKitchenMenus("testdata/kitchens.json")
	assert.NoError(t, err)

	menus := menusByKitchen["downtown"]
	assert.Len(t, menus, 1, "nameless menus are skipped")
	assert.Equal(t, "Lunch Menu", menus[0].Name)
	assert.Equal(t, 2, menus[0].Len(), "duplicate item names are deduplicated")

	items := menus[0].Items()
	assert.Equal(t, "Caesar Salad", items[0].Name)
	assert.Equal(t, 300, items[0].CookTimeSeconds)
	assert.Equal(t, "Margherita Pizza", items[1].Name)
	assert.Equal(t, 720, items[1].CookTimeSeconds, "first entry wins over the duplicate")

	assert.Empty(t, menusByKitchen["harbourside"])
}

func TestBuildKitchen(t *testing.T) {
	menusByKitchen, err := LoadKitchenMenus("testdata/kitchens.json")
	assert.NoError(t, err)

	kitchen, err := BuildKitchen(menusByKitchen, "downtown", 6)
	assert.NoError(t, err)
	assert.Equal(t, "downtown", kitchen.Name)
	assert.Equal(t, 6, kitchen.MaxConcurrentItems)
	assert.Len(t, kitchen.Menus, 1)

	_, err = BuildKitchen(menusByKitchen, "nowhere", 0)
	assert.Error(t, err, "unknown kitchen name")

	_, err = BuildKitchen(menusByKitchen, "harbourside", 0)
	assert.Error(t, err, "kitchen with no menus")
}

func TestLoadOrders(t *testing.T) {
	orders, err := LoadOrders("testdata/orders.json")
	assert.NoError(t, err)
	assert.Len(t, orders, 4)

	alice := orders[0]
	assert.True(t, alice.OrderedAt.Equal(time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Alice Moreau", alice.CustomerName)
	assert.Equal(t, "ubereats", alice.Service)
	assert.Equal(t, 3, alice.ItemCount(), "quantity 2 expands into two items")
	assert.Equal(t, 2*1200+800, alice.TotalPriceCents)

	bob := orders[1]
	assert.Equal(t, 1, bob.ItemCount())
	assert.Equal(t, 550, bob.TotalPriceCents)

	carol := orders[2]
	assert.True(t, carol.OrderedAt.IsZero(), "missing ordered_at is kept for downstream rejection")

	dave := orders[3]
	assert.Equal(t, 0, dave.ItemCount(), "empty item list is kept for downstream rejection")
}
