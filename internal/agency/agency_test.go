package agency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ghost-agency/internal/agents"
	"github.com/talgya/ghost-agency/internal/catalog"
	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
	"github.com/talgya/ghost-agency/internal/facility"
)

func testAgency(t *testing.T, cfg config.Config, seed int64) *Agency {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	return New(cfg, entropy.New(seed), cat, seed)
}

func TestNewStartingState(t *testing.T) {
	cfg := config.Default()
	ag := testAgency(t, cfg, 1)

	assert.Equal(t, cfg.StartingFunds, ag.Funds)
	assert.Equal(t, cfg.StartingReputation, ag.Reputation)
	assert.Equal(t, 1, ag.Day)
	assert.Len(t, ag.Map.Regions, len(cfg.Locations))
	assert.Empty(t, ag.Roster)
	assert.Empty(t, ag.Events)
}

func TestHireChargesCost(t *testing.T) {
	cfg := config.Default()
	ag := testAgency(t, cfg, 1)

	a, ok := ag.HireRandomAgent()
	require.True(t, ok)
	require.NotNil(t, a)
	assert.Equal(t, cfg.StartingFunds-cfg.HiringCost, ag.Funds)
	assert.Len(t, ag.Roster, 1)
	assert.Same(t, a, ag.AgentByID(a.ID))
}

func TestHireFailsWhenBroke(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)
	ag.Funds = 999

	a, ok := ag.HireRandomAgent()
	assert.False(t, ok)
	assert.Nil(t, a)
	assert.Equal(t, 999, ag.Funds)
	assert.Empty(t, ag.Roster)
}

func TestHireStopsAtRosterCap(t *testing.T) {
	cfg := config.Default()
	ag := testAgency(t, cfg, 1)
	ag.Funds = 1_000_000

	for i := 0; i < cfg.MaxAgents; i++ {
		_, ok := ag.HireRandomAgent()
		require.True(t, ok, "hire %d", i)
	}
	_, ok := ag.HireRandomAgent()
	assert.False(t, ok)
	assert.Len(t, ag.Roster, cfg.MaxAgents)
}

func TestAssignClassThroughAgency(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)
	a, _ := ag.HireRandomAgent()
	a.Level = agents.ClassUnlockLevel

	assert.False(t, ag.AssignClass(a.ID+99, agents.ClassGhostHunter))
	assert.True(t, ag.AssignClass(a.ID, agents.ClassGhostHunter))
	require.NotNil(t, a.Class)
	assert.Equal(t, agents.ClassGhostHunter, *a.Class)
	// A class is permanent.
	assert.False(t, ag.AssignClass(a.ID, agents.ClassSpiritWarrior))
}

func TestBuyEquipment(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)
	a, _ := ag.HireRandomAgent()

	// Agents pay out of their own pocket.
	assert.False(t, ag.BuyEquipment(a.ID, "Ghost Gun"))

	a.AddMoney(1000)
	assert.False(t, ag.BuyEquipment(a.ID, "Proton Pack"))
	assert.False(t, ag.BuyEquipment(a.ID, "Spirit Lance")) // level-gated
	assert.True(t, ag.BuyEquipment(a.ID, "Ghost Gun"))
	assert.Equal(t, 0, a.Money)
	require.Len(t, a.Inventory, 1)
	assert.Equal(t, "Ghost Gun", a.Inventory[0].Name)
}

func TestEquipItemThroughAgency(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)
	a, _ := ag.HireRandomAgent()
	a.AddMoney(1000)
	require.True(t, ag.BuyEquipment(a.ID, "Ghost Gun"))
	item := a.Inventory[0]

	assert.False(t, ag.EquipItem(a.ID, "not-an-id"))
	assert.True(t, ag.EquipItem(a.ID, item.ID.String()))
	assert.Empty(t, a.Inventory)
	assert.Same(t, item, a.Equipped[agents.SlotWeapon])
}

func TestRoomCommands(t *testing.T) {
	cfg := config.Default()
	ag := testAgency(t, cfg, 1)

	for i := 0; i < cfg.MaxRooms; i++ {
		_, ok := ag.AddRoom(facility.RoomTraining)
		require.True(t, ok, "room %d", i)
	}
	_, ok := ag.AddRoom(facility.RoomMedical)
	assert.False(t, ok)
	assert.Len(t, ag.Rooms, cfg.MaxRooms)

	assert.True(t, ag.UpgradeRoom(0))
	assert.Equal(t, 2, ag.Rooms[0].Level)
	assert.False(t, ag.UpgradeRoom(cfg.MaxRooms)) // out of range

	assert.True(t, ag.AddRoomUpgrade(0, "Reinforced Walls"))
	assert.False(t, ag.AddRoomUpgrade(0, "Reinforced Walls"))
	assert.True(t, ag.RemoveRoomUpgrade(0, "Reinforced Walls"))
	assert.False(t, ag.RemoveRoomUpgrade(0, "Reinforced Walls"))
}

func TestStartResearchValidatesProjectList(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)

	assert.False(t, ag.StartResearch("Time Travel"))
	assert.True(t, ag.StartResearch("Basic Equipment"))
	// One project at a time.
	assert.False(t, ag.StartResearch("Advanced Sensors"))
}

func TestReputationClamps(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)

	ag.UpdateReputation(200)
	assert.Equal(t, 100, ag.Reputation)
	ag.UpdateReputation(-500)
	assert.Equal(t, 0, ag.Reputation)
}

func TestEventLogTrimsAtCap(t *testing.T) {
	cfg := config.Default()
	cfg.EventLogCap = 10
	ag := testAgency(t, cfg, 1)

	for i := 0; i < 25; i++ {
		ag.AddFunds(1)
	}
	assert.Len(t, ag.Events, 10)
	assert.Equal(t, 25, ag.TotalEvents)

	recent := ag.RecentEvents(3)
	require.Len(t, recent, 3)
	assert.Equal(t, ag.Events[len(ag.Events)-1], recent[2])

	// Oversized and non-positive requests return everything.
	assert.Len(t, ag.RecentEvents(100), 10)
	assert.Len(t, ag.RecentEvents(0), 10)
}

func TestAvailableAgentsFiltersByStatus(t *testing.T) {
	ag := testAgency(t, config.Default(), 1)
	ag.Funds = 1_000_000
	for i := 0; i < 4; i++ {
		_, ok := ag.HireRandomAgent()
		require.True(t, ok)
	}
	ag.Roster[1].Status = agents.StatusResting
	ag.Roster[3].Status = agents.StatusInjured

	idle := ag.AvailableAgents()
	require.Len(t, idle, 2)
	assert.Same(t, ag.Roster[0], idle[0])
	assert.Same(t, ag.Roster[2], idle[1])
}
