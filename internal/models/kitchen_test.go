package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustMenu(t *testing.T, name string, items ...MenuItem) *Menu {
	t.Helper()
	menu, err := NewMenu(name)
	assert.NoError(t, err)
	for _, item := range items {
		menu.AddItem(item)
	}
	return menu
}

func TestNewMenuItem_Validation(t *testing.T) {
	_, err := NewMenuItem("", 60)
	assert.Error(t, err)

	_, err = NewMenuItem("Tiramisu", 0)
	assert.Error(t, err)

	item, err := NewMenuItem("Tiramisu", 300)
	assert.NoError(t, err)
	assert.Equal(t, "Tiramisu", item.Name)
	assert.Equal(t, 300, item.CookTimeSeconds)
}

func TestMenu_DeduplicatesItemsByName(t *testing.T) {
	first, _ := NewMenuItem("Tiramisu", 300)
	duplicate, _ := NewMenuItem("Tiramisu", 900)
	menu := mustMenu(t, "Dessert Menu", first, duplicate)

	assert.Equal(t, 1, menu.Len())
	assert.Equal(t, 300, menu.Items()[0].CookTimeSeconds, "first entry wins")
}

func TestKitchenBuilder_Validation(t *testing.T) {
	item, _ := NewMenuItem("Tiramisu", 300)
	menu := mustMenu(t, "Dessert Menu", item)

	_, err := NewKitchenBuilder().AddMenu(menu).Build()
	assert.Error(t, err, "kitchen name is required")

	_, err = NewKitchenBuilder().SetName("downtown").Build()
	assert.Error(t, err, "at least one menu is required")

	_, err = NewKitchenBuilder().SetName("downtown").AddMenu(menu).SetMaxConcurrentItems(-1).Build()
	assert.Error(t, err, "negative capacity is invalid")

	kitchen, err := NewKitchenBuilder().SetName("downtown").AddMenu(menu).SetMaxConcurrentItems(0).Build()
	assert.NoError(t, err)
	assert.Equal(t, "downtown", kitchen.Name)
	assert.Equal(t, 0, kitchen.MaxConcurrentItems)
}

func TestKitchenBuilder_DeduplicatesMenusByName(t *testing.T) {
	item, _ := NewMenuItem("Tiramisu", 300)
	menu := mustMenu(t, "Dessert Menu", item)
	other, _ := NewMenuItem("Affogato", 120)
	sameName := mustMenu(t, "Dessert Menu", other)

	kitchen, err := NewKitchenBuilder().
		SetName("downtown").
		AddMenu(menu).
		AddMenu(sameName).
		Build()
	assert.NoError(t, err)
	assert.Len(t, kitchen.Menus, 1)
	assert.Equal(t, 1, kitchen.Menus[0].Len(), "first menu per name wins")
}
