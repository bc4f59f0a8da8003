// Package config holds the balance and tuning configuration for the
// agency simulation. A single immutable Config value is built at startup
// and passed into every constructor; there is no package-level default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every balance constant the simulation reads.
type Config struct {
	// Agent generation and progression.
	StatNames []string `yaml:"stat_names"`
	MinStat   int      `yaml:"min_stat"`
	MaxStat   int      `yaml:"max_stat"`

	// Roster and missions.
	MaxAgents           int `yaml:"max_agents"`
	MaxAgentsPerMission int `yaml:"max_agents_per_mission"`
	HiringCost          int `yaml:"hiring_cost"`
	DailySalaryPerAgent int `yaml:"daily_salary_per_agent"`

	// Chance of a minor field incident injuring an idle agent each day.
	EventChance float64 `yaml:"event_chance"`

	// Name pools for generated content.
	Locations       []string `yaml:"locations"`
	GhostTypes      []string `yaml:"ghost_types"`
	GhostAbilities  []string `yaml:"ghost_abilities"`
	GhostWeaknesses []string `yaml:"ghost_weaknesses"`

	// Difficulty values rolled for new missions.
	DifficultyLevels []int `yaml:"difficulty_levels"`

	// Starting values.
	StartingFunds      int `yaml:"starting_funds"`
	StartingReputation int `yaml:"starting_reputation"`

	// Mission rewards.
	BaseMissionReward int `yaml:"base_mission_reward"`

	// Rooms.
	DefaultRoomCapacity    int `yaml:"default_room_capacity"`
	DefaultMaintenanceCost int `yaml:"default_maintenance_cost"`
	MaxRoomLevel           int `yaml:"max_room_level"`
	MaxRooms               int `yaml:"max_rooms"`
	RoomCapacityIncrease   int `yaml:"room_capacity_increase"`
	MaintenanceIncrease    int `yaml:"maintenance_cost_increase"`
	UpgradeMaintenanceCost int `yaml:"upgrade_maintenance_cost"`

	// Research.
	ResearchProjectCost    int      `yaml:"research_project_cost"`
	ResearchDailyIncrement int      `yaml:"research_daily_increment"`
	ResearchProjects       []string `yaml:"research_projects"`

	// Recurring utilities, charged in slice order every day.
	Utilities []Utility `yaml:"utilities"`

	// In-memory mission log cap. Older entries survive only in the archive.
	EventLogCap int `yaml:"event_log_cap"`
}

// Utility is one fixed recurring daily cost.
type Utility struct {
	Name string `yaml:"name"`
	Cost int    `yaml:"cost"`
}

// Default returns the stock balance configuration.
func Default() Config {
	return Config{
		StatNames: []string{"will", "tech", "combat", "fear_resist", "charisma"},
		MinStat:   1,
		MaxStat:   10,

		MaxAgents:           8,
		MaxAgentsPerMission: 4,
		HiringCost:          1000,
		DailySalaryPerAgent: 10,

		EventChance: 0.1,

		Locations: []string{
			"Coastal Ruins", "Abandoned Asylum", "Foggy Woods",
			"Haunted Suburbs", "Ancient Graveyard",
		},
		GhostTypes: []string{"Poltergeist", "Specter", "Wraith", "Phantom", "Shade"},
		GhostAbilities: []string{
			"Possession", "Telekinesis", "Invisibility",
			"Mind Control", "Reality Warp", "Fear Aura",
		},
		GhostWeaknesses: []string{
			"Salt", "Iron", "Holy Water",
			"Light", "Sound", "Cold",
		},

		DifficultyLevels: []int{1, 2, 3, 4},

		StartingFunds:      5000,
		StartingReputation: 50,

		BaseMissionReward: 1000,

		DefaultRoomCapacity:    4,
		DefaultMaintenanceCost: 50,
		MaxRoomLevel:           3,
		MaxRooms:               5,
		RoomCapacityIncrease:   2,
		MaintenanceIncrease:    25,
		UpgradeMaintenanceCost: 10,

		ResearchProjectCost:    100,
		ResearchDailyIncrement: 10,
		ResearchProjects: []string{
			"Basic Equipment",
			"Advanced Sensors",
			"Ghost Containment",
			"Psychic Training",
			"Advanced Containment",
		},

		Utilities: []Utility{
			{Name: "Electricity", Cost: 50},
			{Name: "Water", Cost: 30},
			{Name: "Internet", Cost: 40},
			{Name: "Maintenance", Cost: 20},
		},

		EventLogCap: 1000,
	}
}

// Load reads a YAML balance file layered over the defaults, so a file only
// needs to name the values it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("balance config %s: %w", path, err)
	}
	return cfg, nil
}
