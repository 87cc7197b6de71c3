package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brigade/internal/models"
)

func testKitchen(t *testing.T) *models.Kitchen {
	t.Helper()
	lunch, err := models.NewMenu("Lunch Menu")
	assert.NoError(t, err)
	pizza, _ := models.NewMenuItem("Margherita Pizza", 720)
	salad, _ := models.NewMenuItem("Caesar Salad", 300)
	lunch.AddItem(pizza)
	lunch.AddItem(salad)

	tea, err := models.NewMenu("BubbleTea Menu")
	assert.NoError(t, err)
	milkTea, _ := models.NewMenuItem("Classic Milk Tea", 120)
	tea.AddItem(milkTea)

	empty, err := models.NewMenu("Seasonal Menu")
	assert.NoError(t, err)

	kitchen, err := models.NewKitchenBuilder().
		SetName("downtown").
		AddMenu(lunch).
		AddMenu(tea).
		AddMenu(empty).
		Build()
	assert.NoError(t, err)
	return kitchen
}

func TestNewCookTimeIndex(t *testing.T) {
	idx, err := NewCookTimeIndex(testKitchen(t))
	assert.NoError(t, err)
	assert.Equal(t, 3, idx.Len(), "empty menus are skipped, all items across menus indexed")

	seconds, err := idx.CookTime("Margherita Pizza")
	assert.NoError(t, err)
	assert.Equal(t, 720, seconds)

	seconds, err = idx.CookTime("Classic Milk Tea")
	assert.NoError(t, err)
	assert.Equal(t, 120, seconds)
}

func TestCookTimeIndex_UnknownItemIsAnError(t *testing.T) {
	idx, err := NewCookTimeIndex(testKitchen(t))
	assert.NoError(t, err)

	_, err = idx.CookTime("Beef Wellington")
	assert.Error(t, err, "unknown items must not silently default")
}
