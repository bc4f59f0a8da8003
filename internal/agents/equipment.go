package agents

import "github.com/google/uuid"

// Slot is the body slot a piece of equipment occupies.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotTool
	SlotTrinket
)

// NumSlots is the number of equipment slots.
const NumSlots = 4

var slotNames = [NumSlots]string{"weapon", "armor", "tool", "trinket"}

// SlotName returns the lowercase slot name used by the catalog and class
// bonus tables.
func SlotName(s Slot) string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown"
}

// SlotFromName resolves a catalog slot name. Returns false for unknown names.
func SlotFromName(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// Equipment is a stat/ability modifier an agent can carry or wear. The
// template fields are fixed at creation; only durability wears down.
// An instance belongs to exactly one agent, in either the inventory or one
// equipped slot, never both.
type Equipment struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Slot      Slot           `json:"slot"`
	Stats     map[string]int `json:"stats"`
	Abilities []string       `json:"abilities"`
	Cost      int            `json:"cost"`
	LevelReq  int            `json:"level_requirement"`

	Durability    int `json:"durability"`
	MaxDurability int `json:"max_durability"`
}

const (
	defaultDurability = 100
	abilityWear       = 10
	repairCostPerUnit = 5
)

// NewEquipment builds an equipment instance from template fields with full
// durability and a fresh instance ID.
func NewEquipment(name string, slot Slot, stats map[string]int, abilities []string, cost, levelReq int) *Equipment {
	return &Equipment{
		ID:            uuid.New(),
		Name:          name,
		Slot:          slot,
		Stats:         stats,
		Abilities:     abilities,
		Cost:          cost,
		LevelReq:      levelReq,
		Durability:    defaultDurability,
		MaxDurability: defaultDurability,
	}
}

// HasAbility reports whether the item grants the named ability.
func (e *Equipment) HasAbility(ability string) bool {
	for _, a := range e.Abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// UseAbility consumes durability to use an ability. Returns false if the
// item lacks the ability or is worn out.
func (e *Equipment) UseAbility(ability string) bool {
	if !e.HasAbility(ability) || e.Durability <= 0 {
		return false
	}
	e.Durability -= abilityWear
	if e.Durability < 0 {
		e.Durability = 0
	}
	return true
}

// Repair restores up to amount durability, capped at the maximum, and
// returns the repair cost (per point restored).
func (e *Equipment) Repair(amount int) int {
	if e.Durability >= e.MaxDurability {
		return 0
	}
	restored := amount
	if room := e.MaxDurability - e.Durability; restored > room {
		restored = room
	}
	e.Durability += restored
	return restored * repairCostPerUnit
}

// StatSum is the total of all stat deltas on the item. Equipment bonuses
// are additive when computing mission stats.
func (e *Equipment) StatSum() int {
	total := 0
	for _, v := range e.Stats {
		total += v
	}
	return total
}
