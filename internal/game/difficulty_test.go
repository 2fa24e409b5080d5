package game

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScaleLevelRange(t *testing.T) {
	tests := []struct {
		name     string
		base     LevelRange
		petLevel int
		want     LevelRange
	}{
		{name: "level one keeps base", base: LevelRange{1, 3}, petLevel: 1, want: LevelRange{1, 3}},
		{name: "level four keeps base", base: LevelRange{8, 10}, petLevel: 4, want: LevelRange{8, 10}},
		{name: "level five shifts", base: LevelRange{1, 3}, petLevel: 5, want: LevelRange{2, 4}},
		{name: "odd offset truncates", base: LevelRange{3, 5}, petLevel: 7, want: LevelRange{6, 9}},
		{name: "wide offset", base: LevelRange{8, 10}, petLevel: 20, want: LevelRange{24, 34}},
		{name: "non-positive level treated as one", base: LevelRange{1, 3}, petLevel: 0, want: LevelRange{1, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScaleLevelRange(tc.base, tc.petLevel); got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestScaleLevelRangeBandIsOrdered(t *testing.T) {
	catalog := DefaultCatalog()
	for _, loc := range catalog.Locations {
		for level := 1; level <= 200; level++ {
			band := ScaleLevelRange(loc.Levels, level)
			if band.Min < 1 {
				t.Fatalf("%s L%d: min %d below 1", loc.Name, level, band.Min)
			}
			if band.Min > band.Max {
				t.Fatalf("%s L%d: min %d above max %d", loc.Name, level, band.Min, band.Max)
			}
		}
	}
}

func TestAssessLocation(t *testing.T) {
	band := LevelRange{Min: 4, Max: 6}
	cases := map[int]Advisory{
		3: AdvisoryUnderleveled,
		4: AdvisoryBalanced,
		6: AdvisoryBalanced,
		7: AdvisoryOverleveled,
	}
	for level, want := range cases {
		if got := AssessLocation(level, band); got != want {
			t.Fatalf("level %d: got %v want %v", level, got, want)
		}
	}
	if AdvisoryBalanced.Warning() != "" {
		t.Fatalf("balanced advisory should carry no warning")
	}
}

func TestGenerateOpponent(t *testing.T) {
	// Roster index 1, then level roll 2 within Lake's band 4-6.
	dice := &scriptedDice{rolls: []int{1, 2}}
	g := NewGenerator(DefaultCatalog(), dice)

	o, err := g.Generate("lake", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if o.Name() != "Octopus Monster" {
		t.Fatalf("name=%q", o.Name())
	}
	if o.Level() != 6 {
		t.Fatalf("level=%d want 6", o.Level())
	}
	if o.Element() != ElementWater {
		t.Fatalf("element=%s", o.Element())
	}
	s := o.Stats()
	if s.MaxHealth != 88 || s.Health != 88 {
		t.Fatalf("health=%d/%d want 88", s.Health, s.MaxHealth)
	}
	if !approx(s.Attack, 15.8) || !approx(s.Defense, 12) || !approx(s.Speed, 13) {
		t.Fatalf("stats=%+v", *s)
	}
	if len(dice.calls) != 2 || dice.calls[0] != 2 || dice.calls[1] != 3 {
		t.Fatalf("dice calls=%v want [2 3]", dice.calls)
	}
}

func TestGenerateOpponentStaysInBand(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewDice(42))
	for i := 0; i < 200; i++ {
		o, err := g.Generate("Thunder Valley", 12)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if o.Level() < 16 || o.Level() > 22 {
			t.Fatalf("level %d outside 16-22", o.Level())
		}
	}
}

func TestGenerateUnknownLocation(t *testing.T) {
	dice := &scriptedDice{}
	g := NewGenerator(DefaultCatalog(), dice)
	_, err := g.Generate("Moon Base", 3)
	if !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}
	if len(dice.calls) != 0 {
		t.Fatalf("unknown location should not consume randomness, got %v", dice.calls)
	}
}
