package game

import (
	"fmt"
	"maps"
	"strings"
)

// PetState is the persisted form of a pet. Max health, attack, defense,
// speed and skills are not stored; they are derived from level and training.
type PetState struct {
	Name       string         `json:"name"`
	Element    Element        `json:"type"`
	Level      int            `json:"level"`
	Experience int            `json:"exp"`
	Gold       int            `json:"gold"`
	Items      map[string]int `json:"items"`
	Health     int            `json:"hp"`
	Training   Training       `json:"training"`
}

// State snapshots the pet for persistence.
func (p *Pet) State() PetState {
	items := maps.Clone(p.inventory)
	if items == nil {
		items = map[string]int{}
	}
	return PetState{
		Name:       p.name,
		Element:    p.element,
		Level:      p.level,
		Experience: p.experience,
		Gold:       p.gold,
		Items:      items,
		Health:     p.stats.Health,
		Training:   p.training,
	}
}

// Validate checks the structure of a persisted pet.
func (s PetState) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("pet name is required")
	}
	if !s.Element.Valid() {
		return fmt.Errorf("unknown element %q", s.Element)
	}
	if s.Level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", s.Level)
	}
	if s.Experience < 0 {
		return fmt.Errorf("experience must be non-negative, got %d", s.Experience)
	}
	if s.Gold < 0 {
		return fmt.Errorf("gold must be non-negative, got %d", s.Gold)
	}
	if s.Health < 0 {
		return fmt.Errorf("health must be non-negative, got %d", s.Health)
	}
	for name, count := range s.Items {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("item name is required")
		}
		if count < 0 {
			return fmt.Errorf("item %q count must be non-negative, got %d", name, count)
		}
	}
	t := s.Training
	if t.Attack < 0 || t.Defense < 0 || t.Speed < 0 || t.Health < 0 {
		return fmt.Errorf("training counts must be non-negative")
	}
	return nil
}

// RestorePet rebuilds a pet from persisted state. Derived stats and the skill
// list come from level and training alone. A stored health of zero means the
// field was absent and the pet starts at full health.
func RestorePet(s PetState) (*Pet, error) {
	if err := s.Validate(); err != nil {
		return nil, WrapError(KindInvalidState, "restore pet", err)
	}
	p := &Pet{
		name:       strings.TrimSpace(s.Name),
		element:    s.Element,
		level:      s.Level,
		experience: s.Experience,
		gold:       s.Gold,
		training:   s.Training,
		inventory:  map[string]int{},
	}
	for name, count := range s.Items {
		if count > 0 {
			p.inventory[name] = count
		}
	}
	p.recomputeStats()
	p.stats.Health = s.Health
	if p.stats.Health == 0 {
		p.stats.Health = p.stats.MaxHealth
	}
	p.stats.Health = clamp(p.stats.Health, 0, p.stats.MaxHealth)
	return p, nil
}
