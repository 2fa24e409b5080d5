package game

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Level-one pet stats and the per-level gains applied by LevelUpPet.
const (
	baseMaxHealth = 80
	baseAttack    = 8
	baseDefense   = 4
	baseSpeed     = 4

	levelHealthGain  = 15
	levelAttackGain  = 4
	levelDefenseGain = 2
	levelSpeedGain   = 2
)

var petNames = []string{
	"Ember", "Mossy", "Pebble", "Ripple", "Frost",
	"Gale", "Sparky", "Cinder", "Fern", "Tide",
	"Boulder", "Zephyr", "Volt", "Sprout", "Blaze",
}

// Training counts attribute upgrades bought in the shop.
type Training struct {
	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	Speed   int `json:"speed,omitempty"`
	Health  int `json:"health,omitempty"`
}

// Pet is the player's persistent combatant.
type Pet struct {
	name       string
	element    Element
	level      int
	experience int
	gold       int

	stats       Stats
	baseDefense float64
	training    Training
	inventory   map[string]int
}

// NewPet creates a level-one pet.
func NewPet(name string, element Element) (*Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewError(KindInvalidSelection, "pet name is required")
	}
	if !element.Valid() {
		return nil, WrapError(KindInvalidSelection, "new pet", fmt.Errorf("unknown element %q", element))
	}
	p := &Pet{
		name:      name,
		element:   element,
		level:     1,
		inventory: map[string]int{},
	}
	p.recomputeStats()
	p.stats.Health = p.stats.MaxHealth
	return p, nil
}

// RandomPetName picks a name for players who leave it blank.
func RandomPetName(d Dice) string {
	return petNames[d.IntN(len(petNames))]
}

// recomputeStats derives max health, attack, defense and speed from level and
// training. Health is left untouched.
func (p *Pet) recomputeStats() {
	gained := p.level - 1
	p.stats.MaxHealth = baseMaxHealth + gained*levelHealthGain + p.training.Health*upgradeHealthGain
	p.stats.Attack = float64(baseAttack + gained*levelAttackGain + p.training.Attack*upgradeStatGain)
	p.baseDefense = float64(baseDefense + gained*levelDefenseGain + p.training.Defense*upgradeStatGain)
	p.stats.Defense = p.baseDefense
	p.stats.Speed = float64(baseSpeed + gained*levelSpeedGain + p.training.Speed*upgradeStatGain)
}

func (p *Pet) Name() string         { return p.name }
func (p *Pet) Element() Element     { return p.element }
func (p *Pet) Level() int           { return p.level }
func (p *Pet) Experience() int      { return p.experience }
func (p *Pet) Gold() int            { return p.gold }
func (p *Pet) Stats() *Stats        { return &p.stats }
func (p *Pet) Alive() bool          { return p.stats.Alive() }
func (p *Pet) BaseDefense() float64 { return p.baseDefense }
func (p *Pet) Training() Training   { return p.training }

// Skills lists the pet's moves in unlock order.
func (p *Pet) Skills() []Skill {
	return SkillsForLevel(p.element, p.level)
}

// Inventory returns a copy of the item counts.
func (p *Pet) Inventory() map[string]int {
	return maps.Clone(p.inventory)
}

// ItemNames lists held items in a stable order.
func (p *Pet) ItemNames() []string {
	names := make([]string, 0, len(p.inventory))
	for name := range p.inventory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EndEncounter drops any temporary defense buff.
func (p *Pet) EndEncounter() {
	p.stats.Defense = p.baseDefense
}

// AddGold credits currency.
func (p *Pet) AddGold(amount int) {
	if amount > 0 {
		p.gold += amount
	}
}

func (p *Pet) spendGold(amount int) error {
	if amount > p.gold {
		return WrapError(KindInsufficientGold, "spend gold", fmt.Errorf("need %d, have %d", amount, p.gold))
	}
	p.gold -= amount
	return nil
}

func (p *Pet) addItem(name string, n int) {
	p.inventory[name] += n
}

func (p *Pet) takeItem(name string) bool {
	count := p.inventory[name]
	if count <= 0 {
		delete(p.inventory, name)
		return false
	}
	if count == 1 {
		delete(p.inventory, name)
	} else {
		p.inventory[name] = count - 1
	}
	return true
}
