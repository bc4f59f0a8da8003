package agency

import (
	"github.com/dustin/go-humanize"

	"github.com/talgya/ghost-agency/internal/agents"
)

// Daily recovery rates.
const (
	restingRecovery = 20
	injuredRecovery = 10
)

// DailySummary is the day's closing figures, written to the ledger.
type DailySummary struct {
	Day         int `json:"day" db:"day"`
	Funds       int `json:"funds" db:"funds"`
	Reputation  int `json:"reputation" db:"reputation"`
	RosterSize  int `json:"roster" db:"roster"`
	MissionsRun int `json:"missions_run" db:"missions_run"`
}

// DailyTick advances the agency by one in-game day in a strict, fixed
// order: utilities, salaries, room maintenance (and construction), agent
// recovery, the incident roll, research, then the day counter. No step is
// skipped when funds go negative.
func (ag *Agency) DailyTick() DailySummary {
	// 1. Utilities, in configuration order.
	for _, u := range ag.cfg.Utilities {
		ag.Funds -= u.Cost
		ag.logf("economy", "Paid %s $%s", u.Name, humanize.Comma(int64(u.Cost)))
	}

	// 2. Salaries.
	salaries := len(ag.Roster) * ag.cfg.DailySalaryPerAgent
	ag.Funds -= salaries
	ag.logf("economy", "Paid salaries: $%s", humanize.Comma(int64(salaries)))

	// 3. Room maintenance and construction progress.
	for _, r := range ag.Rooms {
		cost := r.TotalMaintenanceCost()
		ag.Funds -= cost
		ag.logf("economy", "Paid maintenance for %s $%s", r.Name, humanize.Comma(int64(cost)))
		if r.Construct() {
			ag.logf("facility", "%s construction complete", r.Name)
		}
	}

	// 4. Agent recovery. Built rooms speed it up.
	restAmount := int(float64(restingRecovery) * ag.roomBonus("stress_recovery"))
	healBonus := ag.roomBonus("injury_recovery")
	for _, a := range ag.Roster {
		switch a.Status {
		case agents.StatusResting:
			a.RecoverStress(restAmount)
			if a.Status == agents.StatusAvailable {
				ag.logf("roster", "%s recovered and is back on duty", a.Name)
			}
		case agents.StatusInjured:
			a.HealInjury()
			if healBonus > 1.0 && a.Status == agents.StatusInjured {
				a.HealInjury()
			}
			a.RecoverStress(injuredRecovery)
			if a.Status == agents.StatusAvailable {
				ag.logf("roster", "%s healed up and is back on duty", a.Name)
			}
		}
	}

	// 5. Incident roll: an idle agent can get hurt around the office.
	if ag.cfg.EventChance > 0 && ag.src.Float() < ag.cfg.EventChance {
		if idle := ag.AvailableAgents(); len(idle) > 0 {
			victim := idle[ag.src.IntN(len(idle))]
			days := ag.src.Between(1, 3)
			victim.Injure(days)
			ag.logf("roster", "%s was injured in a containment accident (%d days)", victim.Name, days)
		}
	}

	// 6. Research.
	if ag.Research.Current != "" {
		project := ag.Research.Current
		if completed, _ := ag.Research.AdvanceProject(ag.cfg.ResearchDailyIncrement); completed {
			ag.logf("research", "Research complete: %s", project)
		}
	}

	// 7. Next day.
	ag.Day++

	summary := DailySummary{
		Day:         ag.Day - 1,
		Funds:       ag.Funds,
		Reputation:  ag.Reputation,
		RosterSize:  len(ag.Roster),
		MissionsRun: ag.MissionsToday,
	}
	ag.MissionsToday = 0
	return summary
}
