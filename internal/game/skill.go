package game

import "math"

type SkillKind int

const (
	SkillAttack SkillKind = iota
	SkillHeal
	SkillDefenseBuff
)

func (k SkillKind) String() string {
	switch k {
	case SkillAttack:
		return "Attack"
	case SkillHeal:
		return "Heal"
	case SkillDefenseBuff:
		return "Defense"
	default:
		return "Unknown"
	}
}

// Skill is an immutable move definition shared by every pet of an element.
type Skill struct {
	Name  string
	Kind  SkillKind
	Power int
}

// Unlock levels for the skills learned after the starting move.
const (
	HealUnlockLevel     = 3
	SandstormLevel      = 5
	ShieldUnlockLevel   = 7
	AdvancedUnlockLevel = 10
)

var (
	healingSpell = Skill{Name: "Healing Spell", Kind: SkillHeal, Power: 30}
	sandstorm    = Skill{Name: "Sandstorm", Kind: SkillAttack, Power: 25}
	shieldSpell  = Skill{Name: "Shield Spell", Kind: SkillDefenseBuff, Power: 8}

	basicAttack = Skill{Name: "Basic Attack", Kind: SkillAttack, Power: 0}
)

func starterSkill(e Element) Skill {
	names := map[Element]string{
		ElementFire:    "Flame Impact",
		ElementWater:   "Water Whip",
		ElementGrass:   "Vine Entanglement",
		ElementEarth:   "Rock Missile",
		ElementIce:     "Frost Spike",
		ElementWind:    "Storm Blade",
		ElementThunder: "Thunder Strike",
	}
	name, ok := names[e]
	if !ok {
		name = "Normal Attack"
	}
	return Skill{Name: name, Kind: SkillAttack, Power: 20}
}

func advancedSkill(e Element) Skill {
	names := map[Element]string{
		ElementFire:    "Blazing Dragon",
		ElementWater:   "Torrential Wave",
		ElementGrass:   "Thorn Storm",
		ElementEarth:   "Earthquake Wave",
		ElementIce:     "Frozen World",
		ElementWind:    "Hurricane Slash",
		ElementThunder: "Thunderous Might",
	}
	name, ok := names[e]
	if !ok {
		name = "Powerful Attack"
	}
	return Skill{Name: name, Kind: SkillAttack, Power: 30}
}

// SkillsForLevel is the skill list of a pet with the given element and level,
// in unlock order. It is the single source for both level-up and load.
func SkillsForLevel(e Element, level int) []Skill {
	skills := []Skill{starterSkill(e)}
	if level >= HealUnlockLevel {
		skills = append(skills, healingSpell)
	}
	if level >= SandstormLevel {
		skills = append(skills, sandstorm)
	}
	if level >= ShieldUnlockLevel {
		skills = append(skills, shieldSpell)
	}
	if level >= AdvancedUnlockLevel {
		skills = append(skills, advancedSkill(e))
	}
	return skills
}

// Effect describes what one skill resolution did.
type Effect struct {
	User    string
	Target  string
	Skill   Skill
	Amount  int
	Matchup Matchup
}

// ApplySkill resolves skill from user against target.
func ApplySkill(chart ElementChart, d Dice, skill Skill, user, target Combatant) Effect {
	effect := Effect{User: user.Name(), Target: target.Name(), Skill: skill}
	switch skill.Kind {
	case SkillAttack:
		effect.Matchup = chart.Matchup(user.Element(), target.Element())
		damage := attackDamage(user.Stats().Attack, float64(skill.Power), target.Stats().Defense, rollJitter(d), effect.Matchup)
		target.Stats().TakeDamage(damage)
		effect.Amount = damage
	case SkillHeal:
		effect.Target = user.Name()
		effect.Amount = user.Stats().Heal(skill.Power)
	case SkillDefenseBuff:
		// One buff at most: recasting refreshes rather than stacks.
		effect.Target = user.Name()
		stats := user.Stats()
		base := user.BaseDefense()
		before := stats.Defense
		stats.Defense = math.Max(stats.Defense, base+float64(skill.Power))
		effect.Amount = int(stats.Defense - before)
	}
	return effect
}

// floorEpsilon keeps values like 13.999999999 from decimal stat growth on the
// right side of math.Floor.
const floorEpsilon = 1e-9

// attackDamage is max(1, floor(attack+power-defense)+jitter) scaled by the
// matchup and truncated. A scaled hit still deals at least 1.
func attackDamage(attack, power, defense float64, jitter int, m Matchup) int {
	raw := int(math.Floor(attack+power-defense+floorEpsilon)) + jitter
	if raw < 1 {
		raw = 1
	}
	return max(1, int(float64(raw)*m.Multiplier()))
}
