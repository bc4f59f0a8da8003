package agents

import (
	"fmt"

	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
)

// Spawner creates agents with seeded random stats and issues monotonic IDs.
type Spawner struct {
	cfg    config.Config
	src    *entropy.Source
	nextID AgentID
}

// NewSpawner creates a spawner drawing from the given source.
func NewSpawner(cfg config.Config, src *entropy.Source) *Spawner {
	return &Spawner{cfg: cfg, src: src, nextID: 1}
}

// SetNextID sets the next agent ID to be issued.
func (s *Spawner) SetNextID(id AgentID) {
	s.nextID = id
}

// RandomAgent creates a level-1 agent with each stat rolled uniformly in
// the configured range and a generated name.
func (s *Spawner) RandomAgent() *Agent {
	id := s.nextID
	s.nextID++

	stats := make(map[string]int, len(s.cfg.StatNames))
	for _, stat := range s.cfg.StatNames {
		stats[stat] = s.src.Between(s.cfg.MinStat, s.cfg.MaxStat)
	}

	return NewAgent(id, s.generateName(), stats)
}

var firstNames = []string{
	"Mara", "Elias", "Ingrid", "Theo", "Sable", "Quinn",
	"Vera", "Caspian", "Lenore", "Ambrose", "Ophelia", "Silas",
}

var lastNames = []string{
	"Ashcroft", "Voss", "Hollow", "Marlowe", "Graves", "Wexler",
	"Nightingale", "Crane", "Blackwood", "Thorne", "Mercer", "Pale",
}

func (s *Spawner) generateName() string {
	return fmt.Sprintf("%s %s", s.src.Pick(firstNames), s.src.Pick(lastNames))
}
