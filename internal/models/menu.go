package models

import (
	"fmt"
	"sort"
)

// MenuItem represents a dish a kitchen can prepare
type MenuItem struct {
	Name            string
	CookTimeSeconds int
}

// NewMenuItem creates a menu item, validating its invariants
func NewMenuItem(name string, cookTimeSeconds int) (MenuItem, error) {
	if name == "" {
		return MenuItem{}, fmt.Errorf("menu item name is required")
	}
	if cookTimeSeconds <= 0 {
		return MenuItem{}, fmt.Errorf("menu item %q cook time must be greater than 0", name)
	}
	return MenuItem{Name: name, CookTimeSeconds: cookTimeSeconds}, nil
}

// Menu represents a named set of menu items, e.g. a dinner menu or a brand's
// menu. Items are deduplicated by name.
type Menu struct {
	Name  string
	items map[string]MenuItem
}

// NewMenu creates an empty menu
func NewMenu(name string) (*Menu, error) {
	if name == "" {
		return nil, fmt.Errorf("menu name is required")
	}
	return &Menu{Name: name, items: make(map[string]MenuItem)}, nil
}

// AddItem adds a menu item. Adding an item whose name is already on the menu
// replaces nothing; the first entry wins.
func (m *Menu) AddItem(item MenuItem) {
	if _, ok := m.items[item.Name]; ok {
		return
	}
	m.items[item.Name] = item
}

// Len returns the number of distinct items on the menu
func (m *Menu) Len() int {
	return len(m.items)
}

// Items returns the menu items sorted by name
func (m *Menu) Items() []MenuItem {
	items := make([]MenuItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
