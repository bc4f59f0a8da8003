// Package catalog provides the read-only equipment catalog and the pure
// purchase decision. The stock catalog is embedded; a YAML file can
// replace it at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/ghost-agency/internal/agents"
)

//go:embed catalog.yaml
var stockCatalog []byte

// Item is one catalog record, keyed under its slot kind.
type Item struct {
	Name        string         `yaml:"name" json:"name"`
	Slot        string         `yaml:"slot" json:"slot"`
	Stats       map[string]int `yaml:"stats" json:"stats"`
	Abilities   []string       `yaml:"abilities" json:"abilities"`
	Cost        int            `yaml:"cost" json:"cost"`
	LevelReq    int            `yaml:"level_requirement" json:"level_requirement"`
	Description string         `yaml:"description" json:"description"`
}

// Catalog is the full read-only item listing grouped by slot kind.
type Catalog struct {
	Items map[string][]Item `yaml:"items"`
}

// Load reads a catalog YAML file, or the embedded stock catalog when path
// is empty.
func Load(path string) (*Catalog, error) {
	raw := stockCatalog
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("equipment catalog: %w", err)
	}
	for slot, items := range c.Items {
		for _, item := range items {
			if _, ok := agents.SlotFromName(item.Slot); !ok {
				return nil, fmt.Errorf("equipment catalog: item %q under %q has unknown slot %q",
					item.Name, slot, item.Slot)
			}
		}
	}
	return &c, nil
}

// ItemsBySlot lists catalog items of a slot kind purchasable at the given
// agent level.
func (c *Catalog) ItemsBySlot(slot string, level int) []Item {
	out := make([]Item, 0)
	for _, item := range c.Items[slot] {
		if item.LevelReq <= level {
			out = append(out, item)
		}
	}
	return out
}

// AvailableItems lists every catalog item purchasable at the given level.
func (c *Catalog) AvailableItems(level int) []Item {
	out := make([]Item, 0)
	for _, items := range c.Items {
		for _, item := range items {
			if item.LevelReq <= level {
				out = append(out, item)
			}
		}
	}
	return out
}

// Find looks up an item by name across all slots.
func (c *Catalog) Find(name string) (Item, bool) {
	for _, items := range c.Items {
		for _, item := range items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return Item{}, false
}

// Make builds a fresh equipment instance from a catalog record.
func Make(item Item) *agents.Equipment {
	slot, _ := agents.SlotFromName(item.Slot)
	return agents.NewEquipment(item.Name, slot, item.Stats, item.Abilities, item.Cost, item.LevelReq)
}

// Purchase is the pure affordability decision: returns a fresh instance
// and true iff funds cover the cost. The caller commits the debit.
func Purchase(item Item, funds int) (*agents.Equipment, bool) {
	if funds < item.Cost {
		return nil, false
	}
	return Make(item), true
}
