package stats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item is one equippable or usable item definition.
type Item struct {
	Type  string         `yaml:"type"`
	Stats map[string]int `yaml:"stats"`
}

// Items is the item table keyed by item name.
type Items map[string]Item

// LoadItems parses the YAML item table.
func LoadItems(data []byte) (Items, error) {
	var items Items
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	return items, nil
}

// EquipBonus sums stat over the named equipment. Unknown items and items
// without the stat contribute nothing.
func (it Items) EquipBonus(stat string, equips []string) int {
	total := 0
	for _, name := range equips {
		total += it[name].Stats[stat]
	}
	return total
}
