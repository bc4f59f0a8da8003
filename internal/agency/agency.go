// Package agency provides the aggregate root of the simulation: funds,
// reputation, roster, rooms, research, and the mission log. All mutation
// goes through its command surface; the daily tick and mission resolution
// live in their own files.
package agency

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/ghost-agency/internal/agents"
	"github.com/talgya/ghost-agency/internal/catalog"
	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
	"github.com/talgya/ghost-agency/internal/facility"
	"github.com/talgya/ghost-agency/internal/research"
	"github.com/talgya/ghost-agency/internal/world"
)

// Event is one mission-log entry. Observational only: entries never feed
// back into simulation state.
type Event struct {
	Day         int    `json:"day" db:"day"`
	Category    string `json:"category" db:"category"`
	Description string `json:"description" db:"description"`
}

// Agency is the player's organization. Single-writer: callers embedding it
// in a concurrent host must serialize access (the API layer does).
type Agency struct {
	Funds      int    `json:"funds"` // signed, no floor
	Reputation int    `json:"reputation"`
	Day        int    `json:"day"`

	Roster []*agents.Agent   `json:"roster"`
	Fallen []*agents.Agent   `json:"fallen"` // deceased agents, kept for history
	Rooms  []*facility.Room  `json:"rooms"`
	Map    *world.Map        `json:"map"`

	Research *research.Research `json:"research"`

	// Recent mission-log entries, capped; full history goes to the archive.
	Events []Event `json:"events"`

	// TotalEvents counts every entry ever logged, so the archiver can tell
	// which tail of Events it has not yet seen.
	TotalEvents int `json:"total_events"`

	// Missions resolved since the last daily tick, for the ledger.
	MissionsToday int `json:"missions_today"`

	cfg     config.Config
	src     *entropy.Source
	spawner *agents.Spawner
	catalog *catalog.Catalog
}

// New creates an agency with starting funds and reputation, a fresh
// research tracker, and a generated world map.
func New(cfg config.Config, src *entropy.Source, cat *catalog.Catalog, seed int64) *Agency {
	return &Agency{
		Funds:      cfg.StartingFunds,
		Reputation: cfg.StartingReputation,
		Day:        1,
		Map:        world.Generate(cfg, src, seed),
		Research:   research.New(cfg.ResearchProjectCost),
		cfg:        cfg,
		src:        src,
		spawner:    agents.NewSpawner(cfg, src),
		catalog:    cat,
	}
}

// Config returns the balance configuration the agency was built with.
func (ag *Agency) Config() config.Config {
	return ag.cfg
}

// Catalog returns the read-only equipment catalog.
func (ag *Agency) Catalog() *catalog.Catalog {
	return ag.catalog
}

// logf appends a mission-log entry, trimming the in-memory ring at the
// configured cap.
func (ag *Agency) logf(category, format string, args ...any) {
	ag.Events = append(ag.Events, Event{
		Day:         ag.Day,
		Category:    category,
		Description: fmt.Sprintf(format, args...),
	})
	ag.TotalEvents++
	if cap := ag.cfg.EventLogCap; cap > 0 && len(ag.Events) > cap {
		ag.Events = ag.Events[len(ag.Events)-cap:]
	}
}

// RecentEvents returns the last n mission-log entries, newest last.
func (ag *Agency) RecentEvents(n int) []Event {
	if n <= 0 || n > len(ag.Events) {
		n = len(ag.Events)
	}
	return ag.Events[len(ag.Events)-n:]
}

// HireRandomAgent rolls a new agent onto the roster. Fails when the roster
// is full or funds do not cover the hiring cost.
func (ag *Agency) HireRandomAgent() (*agents.Agent, bool) {
	if len(ag.Roster) >= ag.cfg.MaxAgents {
		return nil, false
	}
	if ag.Funds < ag.cfg.HiringCost {
		return nil, false
	}
	a := ag.spawner.RandomAgent()
	ag.Funds -= ag.cfg.HiringCost
	ag.Roster = append(ag.Roster, a)
	ag.logf("roster", "Hired %s (Level %d) for $%s", a.Name, a.Level, humanize.Comma(int64(ag.cfg.HiringCost)))
	return a, true
}

// AgentByID looks up an active roster member.
func (ag *Agency) AgentByID(id agents.AgentID) *agents.Agent {
	for _, a := range ag.Roster {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AvailableAgents lists roster members ready for mission assignment, in
// roster order.
func (ag *Agency) AvailableAgents() []*agents.Agent {
	out := make([]*agents.Agent, 0, len(ag.Roster))
	for _, a := range ag.Roster {
		if a.IsAvailable() {
			out = append(out, a)
		}
	}
	return out
}

// AssignClass gives an agent a specialization. Fails for unknown agents,
// below the unlock level, or when a class is already assigned.
func (ag *Agency) AssignClass(id agents.AgentID, c agents.Class) bool {
	a := ag.AgentByID(id)
	if a == nil || !a.AssignClass(c) {
		return false
	}
	ag.logf("roster", "%s assigned as %s", a.Name, agents.ClassName(c))
	return true
}

// EquipItem equips an inventory item on an agent by instance ID.
func (ag *Agency) EquipItem(id agents.AgentID, itemID string) bool {
	a := ag.AgentByID(id)
	if a == nil {
		return false
	}
	item := a.FindItem(itemID)
	if item == nil || !a.Equip(item) {
		return false
	}
	ag.logf("gear", "%s equipped %s", a.Name, item.Name)
	return true
}

// BuyEquipment purchases a catalog item into an agent's inventory, paid
// from the agent's own money. The purchase decision itself is pure; the
// debit is committed here only after it succeeds.
func (ag *Agency) BuyEquipment(id agents.AgentID, itemName string) bool {
	a := ag.AgentByID(id)
	if a == nil {
		return false
	}
	record, found := ag.catalog.Find(itemName)
	if !found || record.LevelReq > a.Level {
		return false
	}
	item, affordable := catalog.Purchase(record, a.Money)
	if !affordable {
		return false
	}
	a.SpendMoney(record.Cost)
	a.AddToInventory(item)
	ag.logf("gear", "%s bought %s for $%s", a.Name, item.Name, humanize.Comma(int64(record.Cost)))
	return true
}

// AddRoom starts construction of a new room. Fails at the room cap.
func (ag *Agency) AddRoom(t facility.RoomType) (*facility.Room, bool) {
	if len(ag.Rooms) >= ag.cfg.MaxRooms {
		return nil, false
	}
	r := facility.New(ag.cfg, t)
	ag.Rooms = append(ag.Rooms, r)
	ag.logf("facility", "Broke ground on %s (%d days)", r.Name, r.BuildDays)
	return r, true
}

// RoomAt returns the room at a roster index, or nil.
func (ag *Agency) RoomAt(idx int) *facility.Room {
	if idx < 0 || idx >= len(ag.Rooms) {
		return nil
	}
	return ag.Rooms[idx]
}

// UpgradeRoom raises a room's level. Fails at the level cap.
func (ag *Agency) UpgradeRoom(idx int) bool {
	r := ag.RoomAt(idx)
	if r == nil || !r.Upgrade() {
		return false
	}
	ag.logf("facility", "%s upgraded to level %d", r.Name, r.Level)
	return true
}

// AddRoomUpgrade installs a named upgrade on a room.
func (ag *Agency) AddRoomUpgrade(idx int, name string) bool {
	r := ag.RoomAt(idx)
	if r == nil || !r.AddUpgrade(name) {
		return false
	}
	ag.logf("facility", "%s fitted with %s", r.Name, name)
	return true
}

// RemoveRoomUpgrade uninstalls a named upgrade from a room.
func (ag *Agency) RemoveRoomUpgrade(idx int, name string) bool {
	r := ag.RoomAt(idx)
	if r == nil || !r.RemoveUpgrade(name) {
		return false
	}
	ag.logf("facility", "%s stripped of %s", r.Name, name)
	return true
}

// StartResearch activates a named research project from the configured
// tree.
func (ag *Agency) StartResearch(project string) bool {
	known := false
	for _, p := range ag.cfg.ResearchProjects {
		if p == project {
			known = true
			break
		}
	}
	if !known || !ag.Research.StartProject(project) {
		return false
	}
	ag.logf("research", "Research started: %s", project)
	return true
}

// AddFunds credits the treasury.
func (ag *Agency) AddFunds(amount int) {
	ag.Funds += amount
	ag.logf("economy", "Added funds: $%s", humanize.Comma(int64(amount)))
}

// UpdateReputation shifts reputation, clamped to [0, 100].
func (ag *Agency) UpdateReputation(amount int) {
	ag.Reputation += amount
	if ag.Reputation < 0 {
		ag.Reputation = 0
	}
	if ag.Reputation > 100 {
		ag.Reputation = 100
	}
	ag.logf("economy", "Reputation changed: %+d", amount)
}

// roomBonus is the best multiplier any built room offers for a stat.
func (ag *Agency) roomBonus(stat string) float64 {
	best := 1.0
	for _, r := range ag.Rooms {
		if b := r.Bonus(stat); b > best {
			best = b
		}
	}
	return best
}
