package models

import (
	"fmt"
	"sort"
)

// Kitchen represents a physical kitchen configuration: the menus it can
// prepare and how many items it can cook at once. Use KitchenBuilder to
// construct a valid Kitchen.
type Kitchen struct {
	Name  string
	Menus []*Menu
	// MaxConcurrentItems is the number of items which can be prepared
	// concurrently. 0 means parallelism is unconstrained.
	MaxConcurrentItems int
}

// KitchenBuilder constructs a Kitchen, deduplicating menus by name and
// validating invariants before construction.
type KitchenBuilder struct {
	name               string
	menusByName        map[string]*Menu
	maxConcurrentItems int
}

// NewKitchenBuilder creates a builder with unconstrained capacity
func NewKitchenBuilder() *KitchenBuilder {
	return &KitchenBuilder{menusByName: make(map[string]*Menu)}
}

// SetName sets the kitchen name
func (b *KitchenBuilder) SetName(name string) *KitchenBuilder {
	b.name = name
	return b
}

// AddMenu adds a menu. Only one menu per name is kept.
func (b *KitchenBuilder) AddMenu(menu *Menu) *KitchenBuilder {
	if _, ok := b.menusByName[menu.Name]; ok {
		return b
	}
	b.menusByName[menu.Name] = menu
	return b
}

// SetMaxConcurrentItems sets the kitchen's item ceiling. 0 means unconstrained.
func (b *KitchenBuilder) SetMaxConcurrentItems(max int) *KitchenBuilder {
	b.maxConcurrentItems = max
	return b
}

// Build validates the configuration and constructs the Kitchen. An invalid
// configuration fails here rather than producing a partially-valid Kitchen.
func (b *KitchenBuilder) Build() (*Kitchen, error) {
	if b.name == "" {
		return nil, fmt.Errorf("kitchen name must be set and not empty")
	}
	if len(b.menusByName) == 0 {
		return nil, fmt.Errorf("kitchen %q needs at least one menu", b.name)
	}
	if b.maxConcurrentItems < 0 {
		return nil, fmt.Errorf("kitchen %q max concurrent items cannot be negative", b.name)
	}
	menus := make([]*Menu, 0, len(b.menusByName))
	for _, menu := range b.menusByName {
		menus = append(menus, menu)
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].Name < menus[j].Name })
	return &Kitchen{
		Name:               b.name,
		Menus:              menus,
		MaxConcurrentItems: b.maxConcurrentItems,
	}, nil
}
