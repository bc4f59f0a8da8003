// Package world provides the region map: named locations hosting at most
// one live mission each, with per-region hazard modifiers rolled once at
// creation.
package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
	"github.com/talgya/ghost-agency/internal/mission"
)

// Modifiers are a region's fixed hazard profile. Rolled when the region is
// created and immutable for its lifetime.
type Modifiers struct {
	FearMult          float64 `json:"fear_mult"`          // ≥ 1.0
	VisibilityPenalty float64 `json:"visibility_penalty"` // [0, 0.2]
	CombatPenalty     float64 `json:"combat_penalty"`     // [0, 0.2]
	WillpowerBonus    int     `json:"willpower_bonus"`    // {0, 1, 2}
}

// Position is a cosmetic map coordinate for display shells.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region hosts zero or one live mission until regeneration.
type Region struct {
	Name      string           `json:"name"`
	Pos       Position         `json:"pos"`
	Modifiers Modifiers        `json:"modifiers"`
	Mission   *mission.Mission `json:"mission,omitempty"`
}

// Map is the set of regions generating ghost-hunting missions.
type Map struct {
	Regions []*Region `json:"regions"`
}

// Display bounds for cosmetic region placement.
const (
	mapMinX, mapMaxX = 150, 650
	mapMinY, mapMaxY = 150, 450
)

// Generate builds the map from the configured locations. Region positions
// derive from simplex noise over the region index so a seed fully
// determines the layout; modifiers are rolled from the injected source.
func Generate(cfg config.Config, src *entropy.Source, seed int64) *Map {
	xNoise := opensimplex.NewNormalized(seed)
	yNoise := opensimplex.NewNormalized(seed + 1)

	regions := make([]*Region, 0, len(cfg.Locations))
	for i, loc := range cfg.Locations {
		fx := float64(i) * 0.7319
		regions = append(regions, &Region{
			Name: loc,
			Pos: Position{
				X: mapMinX + int(xNoise.Eval2(fx, 0)*float64(mapMaxX-mapMinX)),
				Y: mapMinY + int(yNoise.Eval2(fx, 1)*float64(mapMaxY-mapMinY)),
			},
			Modifiers: rollModifiers(src),
		})
	}

	m := &Map{Regions: regions}
	m.GenerateMissions(src, cfg)
	return m
}

func rollModifiers(src *entropy.Source) Modifiers {
	return Modifiers{
		FearMult:          src.Uniform(1.0, 1.5),
		VisibilityPenalty: src.Uniform(0, 0.2),
		CombatPenalty:     src.Uniform(0, 0.2),
		WillpowerBonus:    src.Between(0, 2),
	}
}

// GenerateMissions rolls a fresh mission for every region at a random
// configured difficulty.
func (m *Map) GenerateMissions(src *entropy.Source, cfg config.Config) {
	for _, r := range m.Regions {
		difficulty := src.PickInt(cfg.DifficultyLevels)
		r.Regenerate(src, cfg, difficulty)
	}
}

// Regenerate replaces the region's mission with a new one at the given
// difficulty. A region holds at most one live mission.
func (r *Region) Regenerate(src *entropy.Source, cfg config.Config, difficulty int) {
	r.Mission = mission.Generate(src, cfg, r.Name, difficulty)
}

// RegionByName looks up a region. Returns nil if unknown.
func (m *Map) RegionByName(name string) *Region {
	for _, r := range m.Regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// MissionAt returns the live mission in the named region, or nil.
func (m *Map) MissionAt(name string) *mission.Mission {
	r := m.RegionByName(name)
	if r == nil {
		return nil
	}
	return r.Mission
}
