// Package agents provides the agent data model: stats, equipment, classes,
// the status state machine, and seeded agent generation.
package agents

import (
	"github.com/talgya/ghost-agency/internal/entropy"
)

// AgentID is a unique identifier for an agent, issued by the Spawner.
type AgentID uint64

// Status is the agent lifecycle state. Deceased is terminal.
type Status uint8

const (
	StatusAvailable Status = iota
	StatusOnMission
	StatusResting
	StatusInjured
	StatusDeceased
)

var statusNames = [...]string{"available", "on_mission", "resting", "injured", "deceased"}

// StatusName returns the lowercase status name for logs and API payloads.
func StatusName(s Status) string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Stress and progression constants.
const (
	MaxStress        = 100
	BreakdownStress  = 80 // stress after surviving a breakdown
	XPPerLevel       = 100
	ClassUnlockLevel = 3
)

// Breakdown is the outcome of crossing the stress ceiling.
type Breakdown uint8

const (
	BreakdownNone Breakdown = iota
	BreakdownResting
	BreakdownDeceased
)

// Agent is a mutable roster entity.
type Agent struct {
	ID         AgentID `json:"id"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	Experience int     `json:"experience"` // cumulative, never reset
	Money      int     `json:"money"`
	Status     Status  `json:"status"`

	Stats     map[string]int      `json:"stats"`
	Inventory []*Equipment        `json:"inventory"`
	Equipped  map[Slot]*Equipment `json:"equipped"`

	Class    *Class `json:"class,omitempty"`
	Stress   int    `json:"stress"`
	DaysHurt int    `json:"injury_days_left,omitempty"` // >0 only while injured
}

// NewAgent creates an agent with the given base stats and empty gear.
func NewAgent(id AgentID, name string, stats map[string]int) *Agent {
	return &Agent{
		ID:       id,
		Name:     name,
		Level:    1,
		Status:   StatusAvailable,
		Stats:    stats,
		Equipped: make(map[Slot]*Equipment, NumSlots),
	}
}

// IsAvailable reports whether the agent can be sent on a mission.
func (a *Agent) IsAvailable() bool {
	return a.Status == StatusAvailable
}

// LevelThreshold is the cumulative experience needed for the next level.
func (a *Agent) LevelThreshold() int {
	return a.Level * XPPerLevel
}

// AddExperience accumulates experience and levels up when the cumulative
// total crosses the rising threshold. Experience is never reset; each level
// raises the bar by XPPerLevel. Returns true on level-up.
func (a *Agent) AddExperience(amount int) bool {
	a.Experience += amount
	if a.Experience >= a.LevelThreshold() {
		a.levelUp()
		return true
	}
	return false
}

func (a *Agent) levelUp() {
	a.Level++
	for stat := range a.Stats {
		a.Stats[stat]++
	}
}

// AssignClass assigns a specialization and applies its stat bonuses.
// Fails below the unlock level or if the agent already has a class.
func (a *Agent) AssignClass(c Class) bool {
	if a.Level < ClassUnlockLevel || a.Class != nil {
		return false
	}
	spec := Spec(c)
	for stat, bonus := range spec.StatBonus {
		a.Stats[stat] += bonus
	}
	a.Class = &c
	return true
}

// ClassEquipmentBonus is the class effectiveness multiplier for a slot kind.
func (a *Agent) ClassEquipmentBonus(slotName string) float64 {
	if a.Class == nil {
		return 1.0
	}
	if b, ok := Spec(*a.Class).EquipmentBonus[slotName]; ok {
		return b
	}
	return 1.0
}

// ClassMissionBonus is the class success multiplier for a mission kind.
func (a *Agent) ClassMissionBonus(kind string) float64 {
	if a.Class == nil {
		return 1.0
	}
	if b, ok := Spec(*a.Class).MissionBonus[kind]; ok {
		return b
	}
	return 1.0
}

// HasClassAbility reports whether the agent's class grants an ability.
func (a *Agent) HasClassAbility(ability string) bool {
	if a.Class == nil {
		return false
	}
	for _, ab := range Spec(*a.Class).Abilities {
		if ab == ability {
			return true
		}
	}
	return false
}

// AddMoney credits the agent's personal balance.
func (a *Agent) AddMoney(amount int) {
	a.Money += amount
}

// SpendMoney debits the balance if sufficient. Returns false otherwise.
func (a *Agent) SpendMoney(amount int) bool {
	if a.Money < amount {
		return false
	}
	a.Money -= amount
	return true
}

// AddToInventory puts an item into the carried inventory.
func (a *Agent) AddToInventory(item *Equipment) {
	a.Inventory = append(a.Inventory, item)
}

// removeFromInventory drops an item by instance identity. Returns false if
// the agent does not carry it.
func (a *Agent) removeFromInventory(item *Equipment) bool {
	for i, held := range a.Inventory {
		if held.ID == item.ID {
			a.Inventory = append(a.Inventory[:i], a.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Equip moves an item from the inventory into its slot, returning any
// previously worn item of the same slot to the inventory. The item must
// currently be in the inventory: an instance is always in exactly one of
// {inventory, one equipped slot}.
func (a *Agent) Equip(item *Equipment) bool {
	if !a.removeFromInventory(item) {
		return false
	}
	if current := a.Equipped[item.Slot]; current != nil {
		a.Inventory = append(a.Inventory, current)
	}
	a.Equipped[item.Slot] = item
	return true
}

// Unequip removes the item in the given slot back to the inventory and
// returns it, or nil if the slot was empty.
func (a *Agent) Unequip(slot Slot) *Equipment {
	item := a.Equipped[slot]
	if item == nil {
		return nil
	}
	a.Equipped[slot] = nil
	a.Inventory = append(a.Inventory, item)
	return item
}

// FindItem looks up an item by instance ID across inventory and equipped
// slots.
func (a *Agent) FindItem(id string) *Equipment {
	for _, item := range a.Inventory {
		if item.ID.String() == id {
			return item
		}
	}
	for _, item := range a.Equipped {
		if item != nil && item.ID.String() == id {
			return item
		}
	}
	return nil
}

// EquippedStats returns the per-stat totals of base stats plus all worn
// equipment.
func (a *Agent) EquippedStats() map[string]int {
	total := make(map[string]int, len(a.Stats))
	for stat, v := range a.Stats {
		total[stat] = v
	}
	for _, item := range a.Equipped {
		if item == nil {
			continue
		}
		for stat, v := range item.Stats {
			total[stat] += v
		}
	}
	return total
}

// TotalStats is the scalar sum of base stats and worn equipment deltas,
// used by mission resolution. Equipment is additive, not multiplicative.
func (a *Agent) TotalStats() int {
	total := 0
	for _, v := range a.Stats {
		total += v
	}
	for _, item := range a.Equipped {
		if item != nil {
			total += item.StatSum()
		}
	}
	return total
}

// HasAbility reports whether any worn item grants the ability.
func (a *Agent) HasAbility(ability string) bool {
	for _, item := range a.Equipped {
		if item != nil && item.HasAbility(ability) {
			return true
		}
	}
	return false
}

// ApplyStress raises stress, clamped at MaxStress. Crossing the ceiling
// rolls a fair coin: the agent either dies (terminal) or enters resting
// with stress reset to BreakdownStress.
func (a *Agent) ApplyStress(amount int, src *entropy.Source) Breakdown {
	a.Stress += amount
	if a.Stress < MaxStress {
		return BreakdownNone
	}
	a.Stress = MaxStress
	if src.Coin() {
		a.Status = StatusDeceased
		return BreakdownDeceased
	}
	a.Status = StatusResting
	a.Stress = BreakdownStress
	return BreakdownResting
}

// RecoverStress lowers stress, floored at 0. A resting agent whose stress
// reaches 0 becomes available again.
func (a *Agent) RecoverStress(amount int) {
	a.Stress -= amount
	if a.Stress < 0 {
		a.Stress = 0
	}
	if a.Stress == 0 && a.Status == StatusResting {
		a.Status = StatusAvailable
	}
}

// Injure puts the agent into the injured state for the given number of
// days.
func (a *Agent) Injure(days int) {
	a.Status = StatusInjured
	a.DaysHurt = days
}

// HealInjury advances injury recovery by one day. Reaching zero days left
// returns the agent to available.
func (a *Agent) HealInjury() {
	if a.Status != StatusInjured {
		return
	}
	a.DaysHurt--
	if a.DaysHurt <= 0 {
		a.DaysHurt = 0
		a.Status = StatusAvailable
	}
}
