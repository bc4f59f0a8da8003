// Package mission provides the mission lifecycle: generated from a ghost,
// assigned to agents, resolved to completed or failed.
package mission

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/ghost-agency/internal/agents"
	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
	"github.com/talgya/ghost-agency/internal/ghost"
)

// Status is the mission lifecycle state.
type Status uint8

const (
	StatusAvailable Status = iota
	StatusInProgress
	StatusCompleted
	StatusFailed
)

var statusNames = [...]string{"available", "in_progress", "completed", "failed"}

// StatusName returns the lowercase status name.
func StatusName(s Status) string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Mission is a ghost hunt at a location. It belongs to exactly one region.
type Mission struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Difficulty  int         `json:"difficulty"`
	Ghost       *ghost.Ghost `json:"ghost"`
	Reward      int         `json:"reward"`
	Status      Status      `json:"status"`

	Assigned []agents.AgentID `json:"assigned_agents"`

	maxAssigned int
}

// Generate wraps a fresh random ghost into an available mission.
func Generate(src *entropy.Source, cfg config.Config, location string, difficulty int) *Mission {
	g := ghost.Random(src, cfg, difficulty)
	return &Mission{
		ID:   uuid.New(),
		Name: fmt.Sprintf("Investigate %s Activity", g.Type),
		Description: fmt.Sprintf("Reports of %s activity in %s. Difficulty level: %d",
			g.Type, location, difficulty),
		Location:    location,
		Difficulty:  difficulty,
		Ghost:       g,
		Reward:      g.Reward(cfg.BaseMissionReward),
		Status:      StatusAvailable,
		maxAssigned: cfg.MaxAgentsPerMission,
	}
}

// Assign adds an agent to the mission. No-ops (returning false) past the
// per-mission cap.
func (m *Mission) Assign(id agents.AgentID) bool {
	if len(m.Assigned) >= m.maxAssigned {
		return false
	}
	m.Assigned = append(m.Assigned, id)
	return true
}

// Remove drops an assigned agent. Returns false if not assigned.
func (m *Mission) Remove(id agents.AgentID) bool {
	for i, a := range m.Assigned {
		if a == id {
			m.Assigned = append(m.Assigned[:i], m.Assigned[i+1:]...)
			return true
		}
	}
	return false
}

// IsAvailable reports whether the mission has not yet been attempted.
func (m *Mission) IsAvailable() bool {
	return m.Status == StatusAvailable
}

// Start marks the mission in progress.
func (m *Mission) Start() {
	m.Status = StatusInProgress
}

// Complete marks the mission completed or failed.
func (m *Mission) Complete(success bool) {
	if success {
		m.Status = StatusCompleted
	} else {
		m.Status = StatusFailed
	}
}
