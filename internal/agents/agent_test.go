package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/entropy"
)

func testAgent() *Agent {
	return NewAgent(1, "Mara Ashcroft", map[string]int{
		"will": 5, "tech": 5, "combat": 5, "fear_resist": 5, "charisma": 5,
	})
}

func TestAddExperienceCumulativeThreshold(t *testing.T) {
	a := testAgent()

	// Level 1 threshold is 100 lifetime XP.
	assert.False(t, a.AddExperience(50))
	assert.Equal(t, 1, a.Level)
	assert.True(t, a.AddExperience(50))
	assert.Equal(t, 2, a.Level)

	// Experience is never reset; the next bar is 200 cumulative.
	assert.Equal(t, 100, a.Experience)
	assert.False(t, a.AddExperience(99))
	assert.True(t, a.AddExperience(1))
	assert.Equal(t, 3, a.Level)
	assert.Equal(t, 200, a.Experience)
}

func TestLevelUpRaisesEveryStat(t *testing.T) {
	a := testAgent()

	a.AddExperience(100)

	for stat, v := range a.Stats {
		assert.Equal(t, 6, v, "stat %s", stat)
	}
}

func TestAssignClassRequiresLevelThree(t *testing.T) {
	a := testAgent()

	assert.False(t, a.AssignClass(ClassGhostHunter))
	assert.Nil(t, a.Class)

	a.AddExperience(100)
	a.AddExperience(100)
	require.Equal(t, 3, a.Level)

	assert.True(t, a.AssignClass(ClassGhostHunter))
	require.NotNil(t, a.Class)
	assert.Equal(t, ClassGhostHunter, *a.Class)

	// Stat bonuses land once.
	assert.Equal(t, 5+2+3, a.Stats["combat"]) // +2 levels, +3 class
	assert.Equal(t, 5+2+2, a.Stats["will"])

	// A second assignment is rejected.
	assert.False(t, a.AssignClass(ClassSpiritHealer))
}

func TestClassBonuses(t *testing.T) {
	a := testAgent()
	a.Level = 3

	assert.Equal(t, 1.0, a.ClassEquipmentBonus("weapon"))
	assert.Equal(t, 1.0, a.ClassMissionBonus("elimination"))
	assert.False(t, a.HasClassAbility("ghost_sight"))

	require.True(t, a.AssignClass(ClassGhostHunter))

	assert.Equal(t, 1.2, a.ClassEquipmentBonus("weapon"))
	assert.Equal(t, 1.0, a.ClassEquipmentBonus("armor"))
	assert.Equal(t, 1.2, a.ClassMissionBonus("elimination"))
	assert.True(t, a.HasClassAbility("ghost_sight"))
}

func TestEquipMovesItemOutOfInventory(t *testing.T) {
	a := testAgent()
	gun := NewEquipment("Ghost Gun", SlotWeapon, map[string]int{"combat": 2, "tech": 1}, []string{"shoot"}, 1000, 1)

	// Not in inventory yet.
	assert.False(t, a.Equip(gun))

	a.AddToInventory(gun)
	assert.True(t, a.Equip(gun))

	// Exactly one of {inventory, equipped slot}.
	assert.Empty(t, a.Inventory)
	assert.Same(t, gun, a.Equipped[SlotWeapon])
}

func TestEquipSwapsSameSlot(t *testing.T) {
	a := testAgent()
	gun := NewEquipment("Ghost Gun", SlotWeapon, map[string]int{"combat": 2}, nil, 1000, 1)
	lance := NewEquipment("Spirit Lance", SlotWeapon, map[string]int{"combat": 4}, nil, 2500, 3)
	a.AddToInventory(gun)
	a.AddToInventory(lance)

	require.True(t, a.Equip(gun))
	require.True(t, a.Equip(lance))

	assert.Same(t, lance, a.Equipped[SlotWeapon])
	require.Len(t, a.Inventory, 1)
	assert.Same(t, gun, a.Inventory[0])
}

func TestUnequipReturnsToInventory(t *testing.T) {
	a := testAgent()
	gun := NewEquipment("Ghost Gun", SlotWeapon, map[string]int{"combat": 2}, nil, 1000, 1)
	a.AddToInventory(gun)
	require.True(t, a.Equip(gun))

	got := a.Unequip(SlotWeapon)

	assert.Same(t, gun, got)
	assert.Nil(t, a.Equipped[SlotWeapon])
	require.Len(t, a.Inventory, 1)

	// Empty slot.
	assert.Nil(t, a.Unequip(SlotWeapon))
}

func TestTotalStatsIncludesEquipmentAdditively(t *testing.T) {
	a := testAgent() // base sum 25
	gun := NewEquipment("Ghost Gun", SlotWeapon, map[string]int{"combat": 2, "tech": 1}, nil, 1000, 1)
	a.AddToInventory(gun)

	assert.Equal(t, 25, a.TotalStats())

	require.True(t, a.Equip(gun))
	assert.Equal(t, 28, a.TotalStats())

	stats := a.EquippedStats()
	assert.Equal(t, 7, stats["combat"])
	assert.Equal(t, 6, stats["tech"])
	assert.Equal(t, 5, stats["will"])
}

func TestApplyStressClampsBelowCeiling(t *testing.T) {
	a := testAgent()
	src := entropy.New(1)

	outcome := a.ApplyStress(40, src)

	assert.Equal(t, BreakdownNone, outcome)
	assert.Equal(t, 40, a.Stress)
	assert.Equal(t, StatusAvailable, a.Status)
}

func TestApplyStressBreakdownIsExactlyTwoOutcomes(t *testing.T) {
	deceased, resting := 0, 0

	for seed := int64(0); seed < 200; seed++ {
		a := testAgent()
		a.Stress = 95
		src := entropy.New(seed)

		switch a.ApplyStress(10, src) {
		case BreakdownDeceased:
			deceased++
			assert.Equal(t, StatusDeceased, a.Status)
			assert.Equal(t, MaxStress, a.Stress)
		case BreakdownResting:
			resting++
			assert.Equal(t, StatusResting, a.Status)
			assert.Equal(t, BreakdownStress, a.Stress)
		default:
			t.Fatalf("seed %d: crossing the ceiling must break down", seed)
		}
	}

	// A fair coin over 200 trials.
	assert.Greater(t, deceased, 60)
	assert.Greater(t, resting, 60)
}

func TestRecoverStressFlipsRestingToAvailable(t *testing.T) {
	a := testAgent()
	a.Status = StatusResting
	a.Stress = 30

	a.RecoverStress(20)
	assert.Equal(t, StatusResting, a.Status)

	a.RecoverStress(20)
	assert.Equal(t, 0, a.Stress)
	assert.Equal(t, StatusAvailable, a.Status)
}

func TestRecoverStressDoesNotReviveInjured(t *testing.T) {
	a := testAgent()
	a.Injure(3)
	a.Stress = 10

	a.RecoverStress(20)

	assert.Equal(t, 0, a.Stress)
	assert.Equal(t, StatusInjured, a.Status)
}

func TestHealInjuryCountsDown(t *testing.T) {
	a := testAgent()
	a.Injure(2)

	a.HealInjury()
	assert.Equal(t, StatusInjured, a.Status)
	assert.Equal(t, 1, a.DaysHurt)

	a.HealInjury()
	assert.Equal(t, StatusAvailable, a.Status)
	assert.Equal(t, 0, a.DaysHurt)
}

func TestSpendMoney(t *testing.T) {
	a := testAgent()
	a.AddMoney(100)

	assert.False(t, a.SpendMoney(101))
	assert.Equal(t, 100, a.Money)
	assert.True(t, a.SpendMoney(100))
	assert.Equal(t, 0, a.Money)
}

func TestSpawnerRollsStatsInRange(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, entropy.New(42))

	for i := 0; i < 50; i++ {
		a := sp.RandomAgent()
		assert.Equal(t, 1, a.Level)
		assert.Equal(t, StatusAvailable, a.Status)
		assert.NotEmpty(t, a.Name)
		require.Len(t, a.Stats, len(cfg.StatNames))
		for stat, v := range a.Stats {
			assert.GreaterOrEqual(t, v, cfg.MinStat, "stat %s", stat)
			assert.LessOrEqual(t, v, cfg.MaxStat, "stat %s", stat)
		}
	}
}

func TestSpawnerIssuesMonotonicIDs(t *testing.T) {
	sp := NewSpawner(config.Default(), entropy.New(1))

	a := sp.RandomAgent()
	b := sp.RandomAgent()

	assert.Equal(t, AgentID(1), a.ID)
	assert.Equal(t, AgentID(2), b.ID)
}
