package game

import (
	"fmt"
	"strings"
)

// Shop upgrade gains. Each purchase costs Catalog.UpgradeCost.
const (
	upgradeStatGain   = 4
	upgradeHealthGain = 15
)

type Attribute string

const (
	AttributeAttack    Attribute = "attack"
	AttributeDefense   Attribute = "defense"
	AttributeSpeed     Attribute = "speed"
	AttributeMaxHealth Attribute = "max_health"
)

// Attributes lists the upgradeable attributes in menu order.
func Attributes() []Attribute {
	return []Attribute{AttributeAttack, AttributeDefense, AttributeSpeed, AttributeMaxHealth}
}

// Label is the shop menu text for an upgrade.
func (a Attribute) Label() string {
	switch a {
	case AttributeAttack:
		return "Attack +4"
	case AttributeDefense:
		return "Defense +4"
	case AttributeSpeed:
		return "Speed +4"
	case AttributeMaxHealth:
		return "Max HP +15"
	default:
		return string(a)
	}
}

// Shop performs the numeric side of buying items, upgrades and healing.
type Shop struct {
	catalog *Catalog
}

func NewShop(catalog *Catalog) *Shop {
	return &Shop{catalog: catalog}
}

// Purchase buys one unit of an item.
func (s *Shop) Purchase(p *Pet, itemName string) (Item, error) {
	item, ok := s.catalog.Item(itemName)
	if !ok {
		return Item{}, WrapError(KindInvalidSelection, "purchase", fmt.Errorf("unknown item %q", itemName))
	}
	if err := p.spendGold(item.Price); err != nil {
		return Item{}, err
	}
	p.addItem(item.Name, 1)
	return item, nil
}

// Upgrade trains one attribute for the flat upgrade cost. Unknown attributes
// are rejected before any gold is taken.
func (s *Shop) Upgrade(p *Pet, attr Attribute) error {
	switch attr {
	case AttributeAttack, AttributeDefense, AttributeSpeed, AttributeMaxHealth:
	default:
		return WrapError(KindInvalidSelection, "upgrade", fmt.Errorf("unknown attribute %q", attr))
	}
	if err := p.spendGold(s.catalog.UpgradeCost); err != nil {
		return err
	}

	buff := p.stats.Defense - p.baseDefense
	switch attr {
	case AttributeAttack:
		p.training.Attack++
	case AttributeDefense:
		p.training.Defense++
	case AttributeSpeed:
		p.training.Speed++
	case AttributeMaxHealth:
		p.training.Health++
		p.stats.Health += upgradeHealthGain
	}
	p.recomputeStats()
	p.stats.Defense += buff
	p.stats.Health = clamp(p.stats.Health, 0, p.stats.MaxHealth)
	return nil
}

// ParseAttribute resolves user input such as "attack" or "max hp".
func ParseAttribute(raw string) (Attribute, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	switch key {
	case "attack", "atk":
		return AttributeAttack, nil
	case "defense", "def":
		return AttributeDefense, nil
	case "speed", "spd":
		return AttributeSpeed, nil
	case "max_health", "max_hp", "hp", "health":
		return AttributeMaxHealth, nil
	}
	return "", WrapError(KindInvalidSelection, "parse attribute", fmt.Errorf("unknown attribute %q", raw))
}

// HealCost is the gold needed to restore amount health.
func (s *Shop) HealCost(amount int) int {
	return int(float64(amount) * s.catalog.HealPricePerHP)
}

// FullRestoreCost is the gold needed to restore the pet to full health.
func (s *Shop) FullRestoreCost(p *Pet) int {
	return s.HealCost(p.stats.MaxHealth - p.stats.Health)
}

// RestoreHealth buys amount health, which must be between 1 and the missing health.
func (s *Shop) RestoreHealth(p *Pet, amount int) error {
	missing := p.stats.MaxHealth - p.stats.Health
	if missing == 0 {
		return NewError(KindInvalidSelection, "pet is already at full health")
	}
	if amount < 1 || amount > missing {
		return WrapError(KindInvalidSelection, "restore health", fmt.Errorf("amount must be between 1 and %d", missing))
	}
	if err := p.spendGold(s.HealCost(amount)); err != nil {
		return err
	}
	p.stats.Heal(amount)
	return nil
}

// UseItem consumes one healing item from the pet's inventory.
func UseItem(c *Catalog, p *Pet, itemName string) (Effect, error) {
	item, ok := c.Item(itemName)
	if !ok || p.inventory[item.Name] <= 0 {
		return Effect{}, WrapError(KindInvalidSelection, "use item", fmt.Errorf("no %q in inventory", itemName))
	}
	p.takeItem(item.Name)
	restored := p.stats.Heal(item.Heal)
	return Effect{
		User:   p.name,
		Target: p.name,
		Skill:  Skill{Name: item.Name, Kind: SkillHeal, Power: item.Heal},
		Amount: restored,
	}, nil
}
