package game

import "fmt"

// Opponent is a generated foe that lives for a single encounter.
type Opponent struct {
	name    string
	element Element
	level   int
	stats   Stats

	baseDefense float64
}

// NewOpponent derives an opponent's stats from its level.
func NewOpponent(name string, element Element, level int) *Opponent {
	if level < 1 {
		level = 1
	}
	l := float64(level)
	o := &Opponent{
		name:    name,
		element: element,
		level:   level,
		stats: Stats{
			MaxHealth: 40 + 8*level,
			Attack:    5 + 1.8*l,
			Defense:   3 + 1.5*l,
			Speed:     4 + 1.5*l,
		},
	}
	o.stats.Health = o.stats.MaxHealth
	o.baseDefense = o.stats.Defense
	return o
}

func (o *Opponent) Name() string     { return o.name }
func (o *Opponent) Element() Element { return o.element }
func (o *Opponent) Level() int       { return o.level }
func (o *Opponent) Stats() *Stats    { return &o.stats }
func (o *Opponent) Alive() bool      { return o.stats.Alive() }

func (o *Opponent) BaseDefense() float64 { return o.baseDefense }

// Generator creates opponents for catalog locations.
type Generator struct {
	catalog *Catalog
	dice    Dice
}

// NewGenerator creates a generator drawing levels and names from dice.
func NewGenerator(catalog *Catalog, dice Dice) *Generator {
	return &Generator{catalog: catalog, dice: dice}
}

// Band is the scaled level band of a location for a pet level.
func (g *Generator) Band(location string, petLevel int) (LevelRange, error) {
	loc, ok := g.catalog.Location(location)
	if !ok {
		return LevelRange{}, WrapError(KindUnknownLocation, "scale location", fmt.Errorf("location %q does not exist", location))
	}
	return ScaleLevelRange(loc.Levels, petLevel), nil
}

// Generate picks a roster name and a level in the scaled band, both uniformly.
func (g *Generator) Generate(location string, petLevel int) (*Opponent, error) {
	loc, ok := g.catalog.Location(location)
	if !ok {
		return nil, WrapError(KindUnknownLocation, "generate opponent", fmt.Errorf("location %q does not exist", location))
	}
	band := ScaleLevelRange(loc.Levels, petLevel)
	name := loc.Roster[g.dice.IntN(len(loc.Roster))]
	level := rollBetween(g.dice, band.Min, band.Max)
	return NewOpponent(name, loc.Element, level), nil
}
