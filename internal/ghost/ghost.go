// Package ghost provides the procedurally generated threat descriptor a
// mission is built around.
package ghost

import (
	"fmt"

	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
)

// Ghost is immutable once generated.
type Ghost struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Difficulty int      `json:"difficulty"`
	Abilities  []string `json:"abilities"`
	Weaknesses []string `json:"weaknesses"`
}

const (
	maxAbilities  = 3
	minWeaknesses = 1
)

// Random generates a ghost for the given difficulty. Ability count scales
// up with difficulty (capped at 3), weakness count scales down (floor 1);
// both are sampled without replacement from the configured pools.
func Random(src *entropy.Source, cfg config.Config, difficulty int) *Ghost {
	ghostType := src.Pick(cfg.GhostTypes)
	name := fmt.Sprintf("%s %d", ghostType, src.Between(1, 999))

	numAbilities := difficulty / 2
	if numAbilities > maxAbilities {
		numAbilities = maxAbilities
	}

	numWeaknesses := 3 - difficulty/2
	if numWeaknesses < minWeaknesses {
		numWeaknesses = minWeaknesses
	}

	return &Ghost{
		Name:       name,
		Type:       ghostType,
		Difficulty: difficulty,
		Abilities:  src.Sample(cfg.GhostAbilities, numAbilities),
		Weaknesses: src.Sample(cfg.GhostWeaknesses, numWeaknesses),
	}
}

// DifficultyMultiplier scales the base reward: 1 + 0.1 per difficulty step.
func (g *Ghost) DifficultyMultiplier() float64 {
	return 1.0 + float64(g.Difficulty)*0.1
}

// Reward is the mission payout for banishing this ghost, floored to an
// integer.
func (g *Ghost) Reward(baseReward int) int {
	return int(float64(baseReward) * g.DifficultyMultiplier())
}

// IsWeakTo reports whether the ghost has the named weakness.
func (g *Ghost) IsWeakTo(weakness string) bool {
	for _, w := range g.Weaknesses {
		if w == weakness {
			return true
		}
	}
	return false
}
