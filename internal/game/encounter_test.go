package game

import (
	"context"
	"errors"
	"testing"
)

func TestEncounterSeededEndToEnd(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)

	if e.PetActsFirst() {
		t.Fatalf("opponent speed 5.5 should beat pet speed 4")
	}

	r1, err := e.PlayRound(context.Background(), SkillAction(0))
	if err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if len(r1.Effects) != 2 || r1.Effects[0].Amount != 2 || r1.Effects[1].Amount != 34 {
		t.Fatalf("round 1 effects=%+v", r1.Effects)
	}
	if r1.Effects[1].Matchup != MatchupAdvantage {
		t.Fatalf("expected type advantage on the pet's attack")
	}
	if pet.Stats().Health != 78 || foe.Stats().Health != 14 {
		t.Fatalf("after round 1 pet=%d foe=%d want 78/14", pet.Stats().Health, foe.Stats().Health)
	}
	if r1.Outcome != OutcomeOngoing {
		t.Fatalf("outcome=%v", r1.Outcome)
	}

	r2, err := e.PlayRound(context.Background(), SkillAction(0))
	if err != nil {
		t.Fatalf("round 2: %v", err)
	}
	if r2.Outcome != OutcomePetVictory {
		t.Fatalf("outcome=%v want victory", r2.Outcome)
	}
	if pet.Stats().Health != 76 || foe.Stats().Health != 0 {
		t.Fatalf("after round 2 pet=%d foe=%d want 76/0", pet.Stats().Health, foe.Stats().Health)
	}

	res := e.Result()
	if res.Rounds != 2 || res.Rewards.Experience != 10 || res.Rewards.Gold != 8 || res.LevelUp != nil {
		t.Fatalf("result=%+v", res)
	}
	if pet.Experience() != 10 || pet.Gold() != 8 || pet.Level() != 1 {
		t.Fatalf("pet exp=%d gold=%d level=%d", pet.Experience(), pet.Gold(), pet.Level())
	}

	if _, err := e.PlayRound(context.Background(), SkillAction(0)); !errors.Is(err, ErrEncounterOver) {
		t.Fatalf("expected ErrEncounterOver, got %v", err)
	}
}

func TestEncounterTieGoesToPet(t *testing.T) {
	pet := newTestPet(t, ElementIce)
	foe := NewOpponent("Ice Wolf", ElementIce, 1)
	foe.stats.Speed = pet.Stats().Speed
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)
	if !e.PetActsFirst() {
		t.Fatalf("equal speed should favour the pet")
	}
	r, err := e.PlayRound(context.Background(), SkillAction(0))
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if r.Effects[0].User != pet.Name() {
		t.Fatalf("first actor=%q want pet", r.Effects[0].User)
	}
}

func TestEncounterSecondActorSkippedWhenDown(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	foe.stats.Speed = 0
	foe.stats.Health = 5
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)

	r, err := e.PlayRound(context.Background(), SkillAction(0))
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if len(r.Effects) != 1 {
		t.Fatalf("defeated opponent should not strike back, effects=%+v", r.Effects)
	}
	if pet.Stats().Health != 80 {
		t.Fatalf("pet health=%d want 80", pet.Stats().Health)
	}
}

func TestEncounterInvalidSelectionDoesNotConsumeRound(t *testing.T) {
	pet := newTestPet(t, ElementWater)
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	dice := &scriptedDice{}
	e := NewEncounter(DefaultCatalog(), dice, pet, foe)

	for _, a := range []Action{SkillAction(1), SkillAction(-1), ItemAction("Small Healing Potion"), {Kind: ActionKind(9)}} {
		if _, err := e.PlayRound(context.Background(), a); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("action %+v: expected ErrInvalidSelection, got %v", a, err)
		}
	}
	if e.Round() != 0 || len(dice.calls) != 0 {
		t.Fatalf("rejected actions changed state: round=%d dice=%v", e.Round(), dice.calls)
	}
	if pet.Stats().Health != 80 || foe.Stats().Health != 48 {
		t.Fatalf("rejected actions changed health")
	}
}

func TestEncounterItemUse(t *testing.T) {
	catalog := DefaultCatalog()
	pet := newTestPet(t, ElementFire)
	pet.AddGold(8)
	if _, err := NewShop(catalog).Purchase(pet, "small healing potion"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	pet.stats.Health = 40
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	e := NewEncounter(catalog, evenDice{}, pet, foe)

	r, err := e.PlayRound(context.Background(), ItemAction("Small Healing Potion"))
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	// Opponent strikes first for 2, then the potion restores 30.
	if pet.Stats().Health != 68 {
		t.Fatalf("health=%d want 68", pet.Stats().Health)
	}
	if len(pet.Inventory()) != 0 {
		t.Fatalf("empty stack should be removed, inventory=%v", pet.Inventory())
	}
	if r.Effects[1].Amount != 30 || foe.Stats().Health != 48 {
		t.Fatalf("item use should only heal: effects=%+v foe=%d", r.Effects, foe.Stats().Health)
	}
}

func TestEncounterDefenseResetOnVictory(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	for pet.Level() < ShieldUnlockLevel {
		LevelUpPet(pet)
	}
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	foe.stats.Speed = 0
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)

	if _, err := e.PlayRound(context.Background(), SkillAction(3)); err != nil {
		t.Fatalf("shield round: %v", err)
	}
	if pet.Stats().Defense != pet.BaseDefense()+8 {
		t.Fatalf("shield not applied: defense=%v", pet.Stats().Defense)
	}
	for !e.Finished() {
		if _, err := e.PlayRound(context.Background(), SkillAction(0)); err != nil {
			t.Fatalf("round: %v", err)
		}
	}
	if e.Outcome() != OutcomePetVictory {
		t.Fatalf("outcome=%v", e.Outcome())
	}
	if pet.Stats().Defense != pet.BaseDefense() {
		t.Fatalf("defense=%v want baseline %v", pet.Stats().Defense, pet.BaseDefense())
	}
}

func TestEncounterDefeatRevivesAndResetsDefense(t *testing.T) {
	pet := newTestPet(t, ElementWater)
	for pet.Level() < ShieldUnlockLevel {
		LevelUpPet(pet)
	}
	foe := NewOpponent("Thunder Beast", ElementThunder, 60)
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)

	if _, err := e.PlayRound(context.Background(), SkillAction(3)); err != nil {
		t.Fatalf("shield round: %v", err)
	}
	for !e.Finished() {
		if _, err := e.PlayRound(context.Background(), SkillAction(3)); err != nil {
			t.Fatalf("round: %v", err)
		}
	}
	if e.Outcome() != OutcomePetDefeated {
		t.Fatalf("outcome=%v want defeat", e.Outcome())
	}
	if pet.Stats().Defense != pet.BaseDefense() {
		t.Fatalf("defense=%v want baseline %v", pet.Stats().Defense, pet.BaseDefense())
	}
	want := pet.Stats().MaxHealth / 5
	if pet.Stats().Health != want || e.Result().RevivedHealth != want {
		t.Fatalf("revived health=%d result=%d want %d", pet.Stats().Health, e.Result().RevivedHealth, want)
	}
	if pet.Experience() != 0 || pet.Gold() != 0 {
		t.Fatalf("defeat should pay nothing")
	}
}

func TestReviveHealth(t *testing.T) {
	pet := newTestPet(t, ElementGrass)
	LevelUpPet(pet)
	if pet.Stats().MaxHealth != 95 {
		t.Fatalf("max health=%d want 95", pet.Stats().MaxHealth)
	}
	pet.stats.Health = 0
	if got := revive(pet); got != 19 || pet.Stats().Health != 19 {
		t.Fatalf("revive=%d health=%d want 19", got, pet.Stats().Health)
	}

	pet.stats.MaxHealth = 4
	pet.stats.Health = 0
	if got := revive(pet); got != 1 {
		t.Fatalf("revive with tiny max=%d want 1", got)
	}
}

func TestRewardFor(t *testing.T) {
	tests := []struct {
		name          string
		opponentLevel int
		petLevel      int
		want          Rewards
	}{
		{name: "high risk", opponentLevel: 10, petLevel: 3, want: Rewards{Experience: 180, Gold: 144, Tier: RewardHighRisk}},
		{name: "gap of three", opponentLevel: 5, petLevel: 2, want: Rewards{Experience: 90, Gold: 72, Tier: RewardHighRisk}},
		{name: "even", opponentLevel: 4, petLevel: 4, want: Rewards{Experience: 40, Gold: 32, Tier: RewardStandard}},
		{name: "low value", opponentLevel: 2, petLevel: 5, want: Rewards{Experience: 8, Gold: 6, Tier: RewardLowValue}},
		{name: "floor at one", opponentLevel: 0, petLevel: 9, want: Rewards{Experience: 1, Gold: 1, Tier: RewardLowValue}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RewardFor(tc.opponentLevel, tc.petLevel); got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestEncounterVictoryAppliesLevelUp(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	LevelUpPet(pet)
	LevelUpPet(pet)
	foe := NewOpponent("Thunder Beast", ElementGrass, 10)
	foe.stats.Health = 1
	foe.stats.Speed = 0
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)

	if _, err := e.PlayRound(context.Background(), SkillAction(0)); err != nil {
		t.Fatalf("round: %v", err)
	}
	res := e.Result()
	if res.Rewards.Experience != 180 || res.Rewards.Gold != 144 {
		t.Fatalf("rewards=%+v", res.Rewards)
	}
	if res.LevelUp == nil || res.LevelUp.Level != 4 {
		t.Fatalf("level up=%+v want level 4", res.LevelUp)
	}
	if pet.Experience() != 0 || pet.Gold() != 144 {
		t.Fatalf("exp=%d gold=%d", pet.Experience(), pet.Gold())
	}
}

type scriptedSource struct {
	actions  []Action
	rejected []error
	reports  []RoundReport
}

func (s *scriptedSource) NextAction(_ context.Context, _ *Encounter) (Action, error) {
	if len(s.actions) == 0 {
		return SkillAction(0), nil
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptedSource) Rejected(err error)          { s.rejected = append(s.rejected, err) }
func (s *scriptedSource) Resolved(report RoundReport) { s.reports = append(s.reports, report) }

func TestEncounterRunReasksOnInvalidSelection(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	foe := NewOpponent("Tree Sprite", ElementGrass, 1)
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, foe)
	src := &scriptedSource{actions: []Action{SkillAction(7), ItemAction("Elixir"), SkillAction(0)}}

	res, err := e.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Outcome != OutcomePetVictory || res.Rounds != 2 {
		t.Fatalf("result=%+v", res)
	}
	if len(src.rejected) != 2 || len(src.reports) != 2 {
		t.Fatalf("rejected=%d reports=%d", len(src.rejected), len(src.reports))
	}
}

func TestEncounterRunHonoursCancellation(t *testing.T) {
	pet := newTestPet(t, ElementFire)
	e := NewEncounter(DefaultCatalog(), evenDice{}, pet, NewOpponent("Tree Sprite", ElementGrass, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx, &scriptedSource{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if e.Round() != 0 {
		t.Fatalf("cancelled run played %d rounds", e.Round())
	}
}

func TestWorldExploreUnknownLocation(t *testing.T) {
	w := NewWorld(DefaultCatalog(), NewDice(1))
	pet := newTestPet(t, ElementFire)
	if _, err := w.Explore("Nowhere", pet); !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}
	views := w.Locations(pet.Level())
	if len(views) != 7 || views[0].Location.Name != "Forest" || views[0].Advisory != AdvisoryBalanced {
		t.Fatalf("views=%+v", views[0])
	}
	if views[6].Advisory != AdvisoryUnderleveled {
		t.Fatalf("thunder valley advisory=%v", views[6].Advisory)
	}
}
