package agency

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/ghost-agency/internal/agents"
	"github.com/talgya/ghost-agency/internal/world"
)

// Success chance is deliberately capped below certainty.
const maxSuccessChance = 0.95

// Outcome reports the result of a resolved mission.
type Outcome struct {
	Region    string           `json:"region"`
	MissionID uuid.UUID        `json:"mission_id"`
	Success   bool             `json:"success"`
	Chance    float64          `json:"chance"`
	Reward    int              `json:"reward"` // 0 on failure
	Assigned  []agents.AgentID `json:"assigned"`
	Stress    int              `json:"stress_applied"` // per agent
	Resting   []string         `json:"resting,omitempty"`
	Deceased  []string         `json:"deceased,omitempty"`
}

// ResolveMission runs the named region's live mission with up to the
// per-mission cap of available agents, taken from the front of the
// available list. Returns false when the region is unknown, has no
// available mission, or no agents can be sent.
//
// Stress breakdown is evaluated at the moment stress is applied; the
// post-mission reset to available only touches agents still on mission,
// so a breakdown outcome is never overwritten.
func (ag *Agency) ResolveMission(regionName string) (*Outcome, bool) {
	region := ag.Map.RegionByName(regionName)
	if region == nil || region.Mission == nil || !region.Mission.IsAvailable() {
		return nil, false
	}
	m := region.Mission

	squad := ag.AvailableAgents()
	if len(squad) == 0 {
		ag.logf("mission", "No agents available at %s", region.Name)
		return nil, false
	}
	if len(squad) > ag.cfg.MaxAgentsPerMission {
		squad = squad[:ag.cfg.MaxAgentsPerMission]
	}

	out := &Outcome{
		Region:    region.Name,
		MissionID: m.ID,
	}

	for _, a := range squad {
		a.Status = agents.StatusOnMission
		m.Assign(a.ID)
		out.Assigned = append(out.Assigned, a.ID)
	}
	m.Start()

	totalStats := 0
	for _, a := range squad {
		totalStats += a.TotalStats()
	}
	chance := float64(totalStats) / float64(m.Difficulty*10)
	if chance > maxSuccessChance {
		chance = maxSuccessChance
	}
	out.Chance = chance
	out.Success = ag.src.Float() < chance

	// Stress lands on every assigned agent regardless of outcome.
	out.Stress = int(float64(m.Difficulty*10) * region.Modifiers.FearMult)
	for _, a := range squad {
		switch a.ApplyStress(out.Stress, ag.src) {
		case agents.BreakdownResting:
			out.Resting = append(out.Resting, a.Name)
			ag.logf("roster", "%s broke down at %s and was sent to rest", a.Name, region.Name)
		case agents.BreakdownDeceased:
			out.Deceased = append(out.Deceased, a.Name)
			ag.logf("roster", "%s was lost at %s", a.Name, region.Name)
		}
	}

	if out.Success {
		out.Reward = m.Reward
		ag.Funds += m.Reward
		ag.logf("economy", "Mission reward: $%s", humanize.Comma(int64(m.Reward)))
		for _, a := range squad {
			if a.Status == agents.StatusDeceased {
				continue
			}
			if a.AddExperience(m.Difficulty * 10) {
				ag.logf("roster", "%s reached level %d", a.Name, a.Level)
			}
		}
		ag.UpdateReputation(m.Difficulty * 5)
	} else {
		ag.UpdateReputation(-m.Difficulty * 2)
	}

	m.Complete(out.Success)

	// Only agents still on mission return to duty; breakdown states stand.
	for _, a := range squad {
		if a.Status == agents.StatusOnMission {
			a.Status = agents.StatusAvailable
		}
	}
	ag.buryFallen()

	result := "FAILURE"
	if out.Success {
		result = "SUCCESS"
	}
	ag.logf("mission", "%s: %s (%.1f%%)", region.Name, result, chance*100)
	ag.MissionsToday++

	// The region immediately regenerates at the same difficulty.
	ag.regenerate(region, m.Difficulty)

	return out, true
}

func (ag *Agency) regenerate(region *world.Region, difficulty int) {
	region.Regenerate(ag.src, ag.cfg, difficulty)
}

// buryFallen moves deceased agents off the active roster into history.
func (ag *Agency) buryFallen() {
	kept := ag.Roster[:0]
	for _, a := range ag.Roster {
		if a.Status == agents.StatusDeceased {
			ag.Fallen = append(ag.Fallen, a)
			continue
		}
		kept = append(kept, a)
	}
	ag.Roster = kept
}
