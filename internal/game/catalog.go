package game

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// LevelRange is an inclusive opponent level band.
type LevelRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Location is a static exploration area.
type Location struct {
	Name    string     `yaml:"name"`
	Element Element    `yaml:"element"`
	Roster  []string   `yaml:"roster"`
	Levels  LevelRange `yaml:"levels"`
}

// Item is a consumable sold in the shop.
type Item struct {
	Name  string `yaml:"name"`
	Heal  int    `yaml:"heal"`
	Price int    `yaml:"price"`
}

// Catalog holds the process-wide static tables. Build it once at startup and
// pass it to the components that need it; it is never mutated afterwards.
type Catalog struct {
	UpgradeCost    int        `yaml:"upgrade_cost"`
	HealPricePerHP float64    `yaml:"heal_price_per_hp"`
	Locations      []Location `yaml:"locations"`
	Items          []Item     `yaml:"items"`

	Chart ElementChart `yaml:"-"`
}

// DefaultCatalog returns the built-in tables.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path yields the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(KindIOFailure, "read catalog", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, WrapError(KindInvalidState, "decode catalog", err)
	}
	c.Chart = DefaultChart()
	if err := c.Validate(); err != nil {
		return nil, WrapError(KindInvalidState, "validate catalog", err)
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if c.UpgradeCost <= 0 {
		return fmt.Errorf("upgrade cost must be positive, got %d", c.UpgradeCost)
	}
	if c.HealPricePerHP < 0 {
		return fmt.Errorf("heal price must be non-negative, got %v", c.HealPricePerHP)
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("catalog has no locations")
	}
	seen := map[string]bool{}
	for _, loc := range c.Locations {
		key := strings.ToLower(strings.TrimSpace(loc.Name))
		if key == "" {
			return fmt.Errorf("location name is required")
		}
		if seen[key] {
			return fmt.Errorf("duplicate location %q", loc.Name)
		}
		seen[key] = true
		if !loc.Element.Valid() {
			return fmt.Errorf("location %q: unknown element %q", loc.Name, loc.Element)
		}
		if len(loc.Roster) == 0 {
			return fmt.Errorf("location %q: roster is empty", loc.Name)
		}
		if loc.Levels.Min < 1 || loc.Levels.Max < loc.Levels.Min {
			return fmt.Errorf("location %q: invalid level band %d-%d", loc.Name, loc.Levels.Min, loc.Levels.Max)
		}
	}
	seen = map[string]bool{}
	for _, item := range c.Items {
		key := strings.ToLower(strings.TrimSpace(item.Name))
		if key == "" {
			return fmt.Errorf("item name is required")
		}
		if seen[key] {
			return fmt.Errorf("duplicate item %q", item.Name)
		}
		seen[key] = true
		if item.Heal <= 0 || item.Price <= 0 {
			return fmt.Errorf("item %q: heal and price must be positive", item.Name)
		}
	}
	return nil
}

// Location finds a location by case-insensitive name.
func (c *Catalog) Location(name string) (Location, bool) {
	for _, loc := range c.Locations {
		if strings.EqualFold(loc.Name, strings.TrimSpace(name)) {
			return loc, true
		}
	}
	return Location{}, false
}

// Item finds an item by case-insensitive name.
func (c *Catalog) Item(name string) (Item, bool) {
	for _, item := range c.Items {
		if strings.EqualFold(item.Name, strings.TrimSpace(name)) {
			return item, true
		}
	}
	return Item{}, false
}

// LocationNames lists locations in catalog order.
func (c *Catalog) LocationNames() []string {
	out := make([]string, 0, len(c.Locations))
	for _, loc := range c.Locations {
		out = append(out, loc.Name)
	}
	return out
}
