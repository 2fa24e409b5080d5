package game

import (
	"reflect"
	"testing"
)

func newTestPet(t *testing.T, element Element) *Pet {
	t.Helper()
	p, err := NewPet("Tester", element)
	if err != nil {
		t.Fatalf("new pet: %v", err)
	}
	return p
}

func skillNames(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}

func TestNewPetStartingStats(t *testing.T) {
	p := newTestPet(t, ElementFire)
	s := p.Stats()
	if s.MaxHealth != 80 || s.Health != 80 {
		t.Fatalf("health=%d/%d want 80/80", s.Health, s.MaxHealth)
	}
	if s.Attack != 8 || s.Defense != 4 || s.Speed != 4 {
		t.Fatalf("stats atk=%v def=%v spd=%v want 8/4/4", s.Attack, s.Defense, s.Speed)
	}
	if p.BaseDefense() != 4 {
		t.Fatalf("base defense=%v want 4", p.BaseDefense())
	}
	if got := skillNames(p.Skills()); !reflect.DeepEqual(got, []string{"Flame Impact"}) {
		t.Fatalf("skills=%v", got)
	}
}

func TestNewPetRejectsBadInput(t *testing.T) {
	if _, err := NewPet("  ", ElementFire); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if _, err := NewPet("Rex", Element("Plasma")); err == nil {
		t.Fatalf("expected unknown element to fail")
	}
}

func TestGainExperienceResetsToZero(t *testing.T) {
	for _, amount := range []int{12, 13, 50, 500} {
		p := newTestPet(t, ElementWater)
		up := GainExperience(p, amount)
		if up == nil {
			t.Fatalf("amount %d: expected a level-up", amount)
		}
		if p.Level() != 2 {
			t.Fatalf("amount %d: level=%d want 2 (one level per call)", amount, p.Level())
		}
		if p.Experience() != 0 {
			t.Fatalf("amount %d: experience=%d want 0", amount, p.Experience())
		}
	}
}

func TestGainExperienceBelowThreshold(t *testing.T) {
	p := newTestPet(t, ElementWater)
	if up := GainExperience(p, 7); up != nil {
		t.Fatalf("unexpected level-up at 7 xp")
	}
	if up := GainExperience(p, 4); up != nil {
		t.Fatalf("unexpected level-up at 11 xp")
	}
	if up := GainExperience(p, 1); up == nil || up.Level != 2 {
		t.Fatalf("expected level 2 at 12 xp, got %+v", up)
	}
	if up := GainExperience(p, 0); up != nil {
		t.Fatalf("zero experience should not level")
	}
}

func TestLevelUpPetGains(t *testing.T) {
	p := newTestPet(t, ElementEarth)
	p.stats.Health = 10
	up := LevelUpPet(p)
	s := p.Stats()
	if up.Level != 2 {
		t.Fatalf("level=%d want 2", up.Level)
	}
	if s.MaxHealth != 95 || s.Health != 95 {
		t.Fatalf("health=%d/%d want 95/95", s.Health, s.MaxHealth)
	}
	if s.Attack != 12 || s.Defense != 6 || s.Speed != 6 || p.BaseDefense() != 6 {
		t.Fatalf("stats atk=%v def=%v spd=%v base=%v", s.Attack, s.Defense, s.Speed, p.BaseDefense())
	}
}

func TestLevelUpLearnsSkillsAtThresholds(t *testing.T) {
	p := newTestPet(t, ElementThunder)
	learnedAt := map[int][]string{}
	for p.Level() < 10 {
		up := LevelUpPet(p)
		if len(up.Learned) > 0 {
			learnedAt[up.Level] = skillNames(up.Learned)
		}
	}
	want := map[int][]string{
		3:  {"Healing Spell"},
		5:  {"Sandstorm"},
		7:  {"Shield Spell"},
		10: {"Thunderous Might"},
	}
	if !reflect.DeepEqual(learnedAt, want) {
		t.Fatalf("learned=%v want %v", learnedAt, want)
	}
}

func TestSkillListMatchesReconstruction(t *testing.T) {
	for _, element := range Elements() {
		grown := newTestPet(t, element)
		for grown.Level() < 10 {
			LevelUpPet(grown)
		}
		loaded, err := RestorePet(PetState{Name: "Tester", Element: element, Level: 10})
		if err != nil {
			t.Fatalf("restore: %v", err)
		}
		got := skillNames(loaded.Skills())
		if !reflect.DeepEqual(got, skillNames(grown.Skills())) {
			t.Fatalf("%s: loaded skills %v differ from grown %v", element, got, skillNames(grown.Skills()))
		}
		if len(got) != 5 {
			t.Fatalf("%s: expected 5 skills, got %v", element, got)
		}
		seen := map[string]bool{}
		for _, name := range got {
			if seen[name] {
				t.Fatalf("%s: duplicate skill %q", element, name)
			}
			seen[name] = true
		}
		gs, ls := grown.Stats(), loaded.Stats()
		if gs.MaxHealth != ls.MaxHealth || gs.Attack != ls.Attack || gs.Defense != ls.Defense || gs.Speed != ls.Speed {
			t.Fatalf("%s: derived stats differ: grown %+v loaded %+v", element, *gs, *ls)
		}
	}
}

func TestSkillsForLevelFallback(t *testing.T) {
	got := skillNames(SkillsForLevel(Element("Shadow"), 10))
	want := []string{"Normal Attack", "Healing Spell", "Sandstorm", "Shield Spell", "Powerful Attack"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("skills=%v want %v", got, want)
	}
}
