package narrate

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/pet-world/internal/game"
)

func TestGoldUsesDigitGrouping(t *testing.T) {
	n := Default()
	if got := n.Gold(1250); got != "1,250 gold" {
		t.Fatalf("gold=%q", got)
	}
	if got := n.Number(12); got != "12" {
		t.Fatalf("number=%q", got)
	}
}

func TestEffectLines(t *testing.T) {
	n := Default()
	tests := []struct {
		name   string
		effect game.Effect
		want   []string
	}{
		{
			name:   "advantage attack",
			effect: game.Effect{User: "Ember", Target: "Tree Sprite", Skill: game.Skill{Name: "Flame Impact", Kind: game.SkillAttack, Power: 20}, Amount: 34, Matchup: game.MatchupAdvantage},
			want:   []string{"Type advantage! Damage increased!", "Ember uses [Flame Impact] and deals 34 damage!"},
		},
		{
			name:   "neutral attack",
			effect: game.Effect{User: "Ice Wolf", Skill: game.Skill{Name: "Basic Attack", Kind: game.SkillAttack}, Amount: 2},
			want:   []string{"Ice Wolf uses [Basic Attack] and deals 2 damage!"},
		},
		{
			name:   "heal",
			effect: game.Effect{User: "Ember", Skill: game.Skill{Name: "Healing Spell", Kind: game.SkillHeal, Power: 30}, Amount: 10},
			want:   []string{"Ember uses [Healing Spell] and restores 10 HP!"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Effect(tc.effect)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestStatusSheet(t *testing.T) {
	pet, err := game.NewPet("Ember", game.ElementFire)
	if err != nil {
		t.Fatalf("new pet: %v", err)
	}
	pet.AddGold(1500)
	lines := Default().Status(pet)
	want := []string{
		"Ember Lv.1 (Fire)",
		"HP: 80/80  Attack: 8  Defense: 4  Speed: 4",
		"Experience: 0/12  Gold: 1,500",
		"Skills: Flame Impact",
		"Items: None",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("status:\n%s", strings.Join(lines, "\n"))
	}
}

func TestResultLines(t *testing.T) {
	pet, _ := game.NewPet("Ember", game.ElementFire)
	foe := game.NewOpponent("Tree Sprite", game.ElementGrass, 1)
	lines := Default().Result(pet, foe, game.Result{
		Outcome: game.OutcomePetVictory,
		Rewards: game.Rewards{Experience: 180, Gold: 1440, Tier: game.RewardHighRisk},
		LevelUp: &game.LevelUp{Level: 4},
	})
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Ember defeated Tree Sprite!", "greatly increased", "gains 1,440 gold!", "levels up to 4!"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in:\n%s", want, joined)
		}
	}

	lines = Default().Result(pet, foe, game.Result{Outcome: game.OutcomePetDefeated, RevivedHealth: 16})
	if len(lines) != 2 || !strings.Contains(lines[1], "16 HP") {
		t.Fatalf("defeat lines=%q", lines)
	}
}
