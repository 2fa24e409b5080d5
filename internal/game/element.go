package game

import (
	"fmt"
	"strings"
)

// Element is one of the seven pet and location types.
type Element string

const (
	ElementFire    Element = "Fire"
	ElementGrass   Element = "Grass"
	ElementWater   Element = "Water"
	ElementIce     Element = "Ice"
	ElementEarth   Element = "Earth"
	ElementWind    Element = "Wind"
	ElementThunder Element = "Thunder"
)

// Elements lists every element in menu order.
func Elements() []Element {
	return []Element{
		ElementFire,
		ElementWater,
		ElementGrass,
		ElementEarth,
		ElementIce,
		ElementWind,
		ElementThunder,
	}
}

func (e Element) Valid() bool {
	for _, known := range Elements() {
		if e == known {
			return true
		}
	}
	return false
}

// ParseElement resolves a case-insensitive element name.
func ParseElement(raw string) (Element, error) {
	raw = strings.TrimSpace(raw)
	for _, known := range Elements() {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}
	return "", WrapError(KindInvalidSelection, "parse element", fmt.Errorf("unknown element %q", raw))
}

type Matchup int

const (
	MatchupNeutral Matchup = iota
	MatchupAdvantage
	MatchupDisadvantage
)

func (m Matchup) String() string {
	switch m {
	case MatchupNeutral:
		return "Neutral"
	case MatchupAdvantage:
		return "Advantage"
	case MatchupDisadvantage:
		return "Disadvantage"
	default:
		return "Unknown"
	}
}

// Multiplier is the damage scale applied to attacks with this matchup.
func (m Matchup) Multiplier() float64 {
	switch m {
	case MatchupAdvantage:
		return 1.5
	case MatchupDisadvantage:
		return 0.75
	default:
		return 1.0
	}
}

// ElementChart maps each element to the element it is strong against.
// It is immutable once built.
type ElementChart struct {
	strong map[Element]Element
}

// NewElementChart builds a chart. Two elements may not be strong against
// each other, so advantage and disadvantage never apply to the same pair.
func NewElementChart(strong map[Element]Element) (ElementChart, error) {
	chart := ElementChart{strong: make(map[Element]Element, len(strong))}
	for from, to := range strong {
		if !from.Valid() || !to.Valid() {
			return ElementChart{}, fmt.Errorf("chart entry %s -> %s uses an unknown element", from, to)
		}
		if from == to {
			return ElementChart{}, fmt.Errorf("chart entry %s is strong against itself", from)
		}
		if back, ok := strong[to]; ok && back == from {
			return ElementChart{}, fmt.Errorf("chart entries %s and %s are strong against each other", from, to)
		}
		chart.strong[from] = to
	}
	return chart, nil
}

// DefaultChart is the standard advantage table.
func DefaultChart() ElementChart {
	chart, err := NewElementChart(map[Element]Element{
		ElementFire:    ElementGrass,
		ElementGrass:   ElementWater,
		ElementWater:   ElementFire,
		ElementIce:     ElementEarth,
		ElementEarth:   ElementWind,
		ElementWind:    ElementGrass,
		ElementThunder: ElementIce,
	})
	if err != nil {
		panic(err)
	}
	return chart
}

// AdvantageOf returns the element e is strong against.
func (c ElementChart) AdvantageOf(e Element) (Element, bool) {
	to, ok := c.strong[e]
	return to, ok
}

// Matchup classifies an attack from attacker against defender.
func (c ElementChart) Matchup(attacker, defender Element) Matchup {
	if to, ok := c.strong[attacker]; ok && to == defender {
		return MatchupAdvantage
	}
	if to, ok := c.strong[defender]; ok && to == attacker {
		return MatchupDisadvantage
	}
	return MatchupNeutral
}
