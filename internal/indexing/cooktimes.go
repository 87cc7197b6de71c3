// Package indexing builds lookup indexes over a kitchen's menus.
package indexing

import (
	"fmt"

	"brigade/internal/models"
)

// CookTimeIndex maps menu item names to cook times, built once per kitchen
// so incoming orders can be annotated without rescanning menus.
type CookTimeIndex struct {
	cookTimeByItemName map[string]int
}

// NewCookTimeIndex scans every menu of the kitchen. Entries with an empty
// name or a non-positive cook time abort construction.
func NewCookTimeIndex(kitchen *models.Kitchen) (*CookTimeIndex, error) {
	idx := &CookTimeIndex{cookTimeByItemName: make(map[string]int)}
	for _, menu := range kitchen.Menus {
		if menu.Len() == 0 {
			continue
		}
		for _, item := range menu.Items() {
			if item.Name == "" {
				return nil, fmt.Errorf("cannot build index: menu %q has an item with no name", menu.Name)
			}
			if item.CookTimeSeconds <= 0 {
				return nil, fmt.Errorf("cannot build index: item %q has invalid cook time %d", item.Name, item.CookTimeSeconds)
			}
			idx.cookTimeByItemName[item.Name] = item.CookTimeSeconds
		}
	}
	return idx, nil
}

// CookTime returns the cook time in seconds for a menu item name. Unknown
// names are an error; the index never defaults.
func (idx *CookTimeIndex) CookTime(itemName string) (int, error) {
	seconds, ok := idx.cookTimeByItemName[itemName]
	if !ok {
		return 0, fmt.Errorf("item %q is not on any menu of this kitchen", itemName)
	}
	return seconds, nil
}

// Len returns the number of indexed items
func (idx *CookTimeIndex) Len() int {
	return len(idx.cookTimeByItemName)
}
