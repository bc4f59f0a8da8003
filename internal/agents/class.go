package agents

// Class is an agent specialization, assignable from level 3.
type Class uint8

const (
	ClassGhostHunter Class = iota
	ClassSpiritWarrior
	ClassTechExorcist
	ClassGhostEngineer
	ClassSpiritHealer
	ClassGhostResearcher
	ClassGhostOperative
	ClassPhantomMentor
	numClasses
)

// NumClasses is the number of assignable classes.
const NumClasses = int(numClasses)

// Specialization is the static bonus bundle attached to a class.
type Specialization struct {
	Name           string
	Description    string
	StatBonus      map[string]int     // applied once on assignment
	Abilities      []string           // granted abilities
	EquipmentBonus map[string]float64 // effectiveness multiplier by slot name
	MissionBonus   map[string]float64 // success multiplier by mission kind
}

// specializations is total over all Class values; Spec never falls through
// to an empty bundle.
var specializations = [NumClasses]Specialization{
	ClassGhostHunter: {
		Name:           "Ghost Hunter",
		Description:    "Expert in direct ghost combat and elimination",
		StatBonus:      map[string]int{"combat": 3, "will": 2},
		Abilities:      []string{"ghost_sight", "spirit_weapon"},
		EquipmentBonus: map[string]float64{"weapon": 1.2},
		MissionBonus:   map[string]float64{"elimination": 1.2},
	},
	ClassSpiritWarrior: {
		Name:           "Spirit Warrior",
		Description:    "Master of spiritual combat and protection",
		StatBonus:      map[string]int{"combat": 2, "will": 3},
		Abilities:      []string{"spirit_shield", "holy_aura"},
		EquipmentBonus: map[string]float64{"armor": 1.2},
		MissionBonus:   map[string]float64{"protection": 1.2},
	},
	ClassTechExorcist: {
		Name:           "Tech Exorcist",
		Description:    "Combines technology with spiritual practice",
		StatBonus:      map[string]int{"tech": 3, "will": 2},
		Abilities:      []string{"tech_enhance", "spirit_scan"},
		EquipmentBonus: map[string]float64{"tool": 1.2},
		MissionBonus:   map[string]float64{"investigation": 1.2},
	},
	ClassGhostEngineer: {
		Name:           "Ghost Engineer",
		Description:    "Builds and maintains containment hardware",
		StatBonus:      map[string]int{"tech": 3, "combat": 1},
		Abilities:      []string{"jury_rig", "overcharge"},
		EquipmentBonus: map[string]float64{"tool": 1.2, "weapon": 1.1},
		MissionBonus:   map[string]float64{"containment": 1.2},
	},
	ClassSpiritHealer: {
		Name:           "Spirit Healer",
		Description:    "Specializes in healing spiritual wounds",
		StatBonus:      map[string]int{"will": 3, "tech": 1},
		Abilities:      []string{"spirit_heal", "purify"},
		EquipmentBonus: map[string]float64{"trinket": 1.2},
		MissionBonus:   map[string]float64{"rescue": 1.2},
	},
	ClassGhostResearcher: {
		Name:           "Ghost Researcher",
		Description:    "Studies and documents paranormal phenomena",
		StatBonus:      map[string]int{"tech": 3, "will": 1},
		Abilities:      []string{"analyze", "document"},
		EquipmentBonus: map[string]float64{"tool": 1.2},
		MissionBonus:   map[string]float64{"research": 1.2},
	},
	ClassGhostOperative: {
		Name:           "Ghost Operative",
		Description:    "Covert operations specialist",
		StatBonus:      map[string]int{"combat": 2, "tech": 2, "will": 1},
		Abilities:      []string{"stealth", "infiltrate"},
		EquipmentBonus: map[string]float64{"weapon": 1.1, "tool": 1.1},
		MissionBonus:   map[string]float64{"infiltration": 1.2},
	},
	ClassPhantomMentor: {
		Name:           "Phantom Mentor",
		Description:    "Steadies rookies in the field",
		StatBonus:      map[string]int{"charisma": 3, "fear_resist": 2},
		Abilities:      []string{"rally", "calm_mind"},
		EquipmentBonus: map[string]float64{"trinket": 1.2},
		MissionBonus:   map[string]float64{"escort": 1.2},
	},
}

// Spec returns the specialization for a class. The table is total: every
// class value resolves.
func Spec(c Class) Specialization {
	return specializations[c]
}

// ClassName returns the display name of a class.
func ClassName(c Class) string {
	return specializations[c].Name
}

// AvailableClasses lists the classes assignable at the given agent level.
// Classes unlock at level 3.
func AvailableClasses(level int) []Class {
	if level < ClassUnlockLevel {
		return nil
	}
	out := make([]Class, NumClasses)
	for i := range out {
		out[i] = Class(i)
	}
	return out
}
