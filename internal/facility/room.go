// Package facility provides agency headquarters rooms: capacity,
// maintenance economy, upgrades, and day-by-day construction.
package facility

import (
	"github.com/talgya/ghost-agency/internal/config"
)

// RoomType is the fixed set of room kinds.
type RoomType uint8

const (
	RoomTraining RoomType = iota
	RoomResearch
	RoomMedical
	RoomContainment
)

var roomTypeNames = [...]string{"training", "research", "medical", "containment"}

// TypeName returns the lowercase room type name.
func TypeName(t RoomType) string {
	if int(t) < len(roomTypeNames) {
		return roomTypeNames[t]
	}
	return "unknown"
}

// TypeFromName resolves a room type name. Returns false for unknown names.
func TypeFromName(name string) (RoomType, bool) {
	for i, n := range roomTypeNames {
		if n == name {
			return RoomType(i), true
		}
	}
	return 0, false
}

// Room is a facility unit. Capacity and maintenance cost only ever
// increase, via Upgrade, up to the level cap.
type Room struct {
	Name            string   `json:"name"`
	Type            RoomType `json:"type"`
	Level           int      `json:"level"`
	Capacity        int      `json:"capacity"`
	MaintenanceCost int      `json:"maintenance_cost"`
	Upgrades        []string `json:"upgrades"`

	// Construction: bonuses apply only once the room is built.
	BuildDays int                `json:"build_days"`
	Progress  int                `json:"progress"`
	Built     bool               `json:"built"`
	Bonuses   map[string]float64 `json:"bonuses,omitempty"`

	cfg config.Config
}

// New creates a level-1 room of the given type with stock capacity and
// maintenance.
func New(cfg config.Config, t RoomType) *Room {
	r := &Room{
		Type:            t,
		Level:           1,
		Capacity:        cfg.DefaultRoomCapacity,
		MaintenanceCost: cfg.DefaultMaintenanceCost,
		cfg:             cfg,
	}
	switch t {
	case RoomTraining:
		r.Name = "Training Room"
		r.BuildDays = 3
		r.Bonuses = map[string]float64{"will": 1.2, "combat": 1.2, "tech": 1.2}
	case RoomResearch:
		r.Name = "Research Lab"
		r.BuildDays = 4
		r.Bonuses = map[string]float64{"tech": 1.3, "fear_resist": 1.2}
	case RoomMedical:
		r.Name = "Medical Bay"
		r.BuildDays = 3
		r.Bonuses = map[string]float64{"stress_recovery": 1.5, "injury_recovery": 1.5}
	case RoomContainment:
		r.Name = "Containment Unit"
		r.BuildDays = 5
		r.Bonuses = map[string]float64{"fear_resist": 1.3}
	}
	return r
}

// Upgrade raises level, capacity, and maintenance cost monotonically.
// Returns false at the level cap without mutating anything.
func (r *Room) Upgrade() bool {
	if r.Level >= r.cfg.MaxRoomLevel {
		return false
	}
	r.Level++
	r.Capacity += r.cfg.RoomCapacityIncrease
	r.MaintenanceCost += r.cfg.MaintenanceIncrease
	return true
}

// AddUpgrade installs a named upgrade. Set semantics: returns false if
// already present.
func (r *Room) AddUpgrade(name string) bool {
	for _, u := range r.Upgrades {
		if u == name {
			return false
		}
	}
	r.Upgrades = append(r.Upgrades, name)
	return true
}

// RemoveUpgrade uninstalls a named upgrade. Returns false if absent.
func (r *Room) RemoveUpgrade(name string) bool {
	for i, u := range r.Upgrades {
		if u == name {
			r.Upgrades = append(r.Upgrades[:i], r.Upgrades[i+1:]...)
			return true
		}
	}
	return false
}

// TotalMaintenanceCost is the daily cost: base plus a fixed surcharge per
// installed upgrade.
func (r *Room) TotalMaintenanceCost() int {
	return r.MaintenanceCost + len(r.Upgrades)*r.cfg.UpgradeMaintenanceCost
}

// Construct advances construction by one day. Returns true on the day
// construction completes.
func (r *Room) Construct() bool {
	if r.Built {
		return false
	}
	r.Progress++
	if r.Progress >= r.BuildDays {
		r.Built = true
		return true
	}
	return false
}

// Bonus returns the room's multiplier for a stat, or 1.0 while unbuilt or
// for stats it does not boost.
func (r *Room) Bonus(stat string) float64 {
	if !r.Built {
		return 1.0
	}
	if b, ok := r.Bonuses[stat]; ok {
		return b
	}
	return 1.0
}
