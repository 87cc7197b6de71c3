package config

import (
	"encoding/json"
	"fmt"
	"os"

	"brigade/internal/models"
)

// JSON records for the kitchen catalog file:
// [{"name": ..., "menus": [{"name": ..., "menu_items": [{"name": ..., "cook_time": ...}]}]}]
type menuItemRecord struct {
	Name            string `json:"name"`
	CookTimeSeconds int    `json:"cook_time"`
}

type menuRecord struct {
	Name      string           `json:"name"`
	MenuItems []menuItemRecord `json:"menu_items"`
}

type kitchenRecord struct {
	Name  string       `json:"name"`
	Menus []menuRecord `json:"menus"`
}

// LoadKitchenMenus parses the kitchen catalog file into menus grouped by
// kitchen name. Menus with no name are skipped; invalid menu items fail the
// load, so a kitchen built from the result is valid or the load never
// succeeds.
func LoadKitchenMenus(path string) (map[string][]*models.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kitchen catalog %s: %w", path, err)
	}
	var records []kitchenRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing kitchen catalog %s: %w", path, err)
	}

	menusByKitchenName := make(map[string][]*models.Menu)
	for _, kitchen := range records {
		if kitchen.Name == "" {
			continue
		}
		menus := make([]*models.Menu, 0, len(kitchen.Menus))
		for _, menuRec := range kitchen.Menus {
			if menuRec.Name == "" {
				continue
			}
			menu, err := models.NewMenu(menuRec.Name)
			if err != nil {
				return nil, fmt.Errorf("kitchen %q: %w", kitchen.Name, err)
			}
			for _, itemRec := range menuRec.MenuItems {
				item, err := models.NewMenuItem(itemRec.Name, itemRec.CookTimeSeconds)
				if err != nil {
					return nil, fmt.Errorf("kitchen %q, menu %q: %w", kitchen.Name, menuRec.Name, err)
				}
				menu.AddItem(item)
			}
			menus = append(menus, menu)
		}
		menusByKitchenName[kitchen.Name] = menus
	}
	return menusByKitchenName, nil
}

// BuildKitchen assembles a Kitchen from the catalog for the named kitchen
func BuildKitchen(menusByKitchenName map[string][]*models.Menu, name string, maxConcurrentItems int) (*models.Kitchen, error) {
	menus, ok := menusByKitchenName[name]
	if !ok {
		return nil, fmt.Errorf("the kitchen configuration specified, %q, cannot be found", name)
	}
	if len(menus) == 0 {
		return nil, fmt.Errorf("the kitchen %q has no menus configured", name)
	}
	builder := models.NewKitchenBuilder().
		SetName(name).
		SetMaxConcurrentItems(maxConcurrentItems)
	for _, menu := range menus {
		builder.AddMenu(menu)
	}
	return builder.Build()
}
