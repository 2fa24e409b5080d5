package game

// World bundles the static tables with the process random source.
type World struct {
	Catalog   *Catalog
	Dice      Dice
	Shop      *Shop
	generator *Generator
}

func NewWorld(catalog *Catalog, dice Dice) *World {
	return &World{
		Catalog:   catalog,
		Dice:      dice,
		Shop:      NewShop(catalog),
		generator: NewGenerator(catalog, dice),
	}
}

// LocationView is a location with its band scaled for a pet.
type LocationView struct {
	Location Location
	Band     LevelRange
	Advisory Advisory
}

// Locations lists every location scaled for the pet's level.
func (w *World) Locations(petLevel int) []LocationView {
	out := make([]LocationView, 0, len(w.Catalog.Locations))
	for _, loc := range w.Catalog.Locations {
		band := ScaleLevelRange(loc.Levels, petLevel)
		out = append(out, LocationView{
			Location: loc,
			Band:     band,
			Advisory: AssessLocation(petLevel, band),
		})
	}
	return out
}

// Explore generates an opponent at a location and opens an encounter.
// An unknown location fails without changing anything.
func (w *World) Explore(location string, pet *Pet) (*Encounter, error) {
	opponent, err := w.generator.Generate(location, pet.Level())
	if err != nil {
		return nil, err
	}
	return NewEncounter(w.Catalog, w.Dice, pet, opponent), nil
}

// Generator exposes the opponent generator.
func (w *World) Generator() *Generator {
	return w.generator
}
