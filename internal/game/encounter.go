package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

type Outcome string

const (
	OutcomeOngoing     Outcome = "ongoing"
	OutcomePetVictory  Outcome = "pet_victory"
	OutcomePetDefeated Outcome = "pet_defeated"
)

const (
	eventVanquish = "vanquish"
	eventFall     = "fall"
)

type ActionKind int

const (
	ActionSkill ActionKind = iota
	ActionItem
)

// Action is the player's choice for one round.
type Action struct {
	Kind  ActionKind
	Skill int
	Item  string
}

func SkillAction(index int) Action  { return Action{Kind: ActionSkill, Skill: index} }
func ItemAction(name string) Action { return Action{Kind: ActionItem, Item: name} }

// RoundReport lists the effects of one round in resolution order.
type RoundReport struct {
	Round    int
	PetFirst bool
	Effects  []Effect
	Outcome  Outcome
}

// Result summarises a finished encounter.
type Result struct {
	Outcome       Outcome
	Rounds        int
	Rewards       Rewards
	LevelUp       *LevelUp
	RevivedHealth int
}

// ActionSource supplies the player's choice for each round. Rejected is
// called when a choice fails validation and the round is asked for again;
// Resolved is called after every completed round.
type ActionSource interface {
	NextAction(ctx context.Context, e *Encounter) (Action, error)
	Rejected(err error)
	Resolved(report RoundReport)
}

// Encounter is one fight between the pet and a generated opponent.
type Encounter struct {
	catalog  *Catalog
	dice     Dice
	pet      *Pet
	opponent *Opponent
	machine  *fsm.FSM
	round    int
	result   Result
}

// NewEncounter starts a fight in the ongoing state.
func NewEncounter(catalog *Catalog, dice Dice, pet *Pet, opponent *Opponent) *Encounter {
	e := &Encounter{
		catalog:  catalog,
		dice:     dice,
		pet:      pet,
		opponent: opponent,
	}
	e.machine = fsm.NewFSM(
		string(OutcomeOngoing),
		fsm.Events{
			{Name: eventVanquish, Src: []string{string(OutcomeOngoing)}, Dst: string(OutcomePetVictory)},
			{Name: eventFall, Src: []string{string(OutcomeOngoing)}, Dst: string(OutcomePetDefeated)},
		},
		fsm.Callbacks{
			// Leaving ongoing happens once, whichever way the fight ends.
			"leave_" + string(OutcomeOngoing): func(_ context.Context, _ *fsm.Event) {
				e.pet.EndEncounter()
			},
			"enter_" + string(OutcomePetVictory): func(_ context.Context, _ *fsm.Event) {
				e.result.Rewards = RewardFor(e.opponent.Level(), e.pet.Level())
				e.result.LevelUp = GainExperience(e.pet, e.result.Rewards.Experience)
				e.pet.AddGold(e.result.Rewards.Gold)
			},
			"enter_" + string(OutcomePetDefeated): func(_ context.Context, _ *fsm.Event) {
				e.result.RevivedHealth = revive(e.pet)
			},
		},
	)
	return e
}

func (e *Encounter) Pet() *Pet           { return e.pet }
func (e *Encounter) Opponent() *Opponent { return e.opponent }
func (e *Encounter) Round() int          { return e.round }
func (e *Encounter) Outcome() Outcome    { return Outcome(e.machine.Current()) }
func (e *Encounter) Finished() bool      { return e.Outcome() != OutcomeOngoing }

// PetActsFirst reports the turn order; ties go to the pet.
func (e *Encounter) PetActsFirst() bool {
	return e.pet.Stats().Speed >= e.opponent.Stats().Speed
}

// Result is the summary so far; rewards and revival are set once finished.
func (e *Encounter) Result() Result {
	r := e.result
	r.Outcome = e.Outcome()
	r.Rounds = e.round
	return r
}

// Validate checks an action without changing any state.
func (e *Encounter) Validate(a Action) error {
	switch a.Kind {
	case ActionSkill:
		skills := e.pet.Skills()
		if a.Skill < 0 || a.Skill >= len(skills) {
			return WrapError(KindInvalidSelection, "choose skill", fmt.Errorf("skill %d is out of range 1-%d", a.Skill+1, len(skills)))
		}
	case ActionItem:
		if len(e.pet.inventory) == 0 {
			return NewError(KindInvalidSelection, "you have no items")
		}
		item, ok := e.catalog.Item(a.Item)
		if !ok || e.pet.inventory[item.Name] <= 0 {
			return WrapError(KindInvalidSelection, "choose item", fmt.Errorf("no %q in inventory", a.Item))
		}
	default:
		return WrapError(KindInvalidSelection, "choose action", fmt.Errorf("unknown action kind %d", a.Kind))
	}
	return nil
}

// PlayRound resolves one round. An invalid action is rejected before the
// round starts, so it changes nothing and does not count as a round.
func (e *Encounter) PlayRound(ctx context.Context, a Action) (RoundReport, error) {
	if e.Finished() {
		return RoundReport{}, ErrEncounterOver
	}
	if err := e.Validate(a); err != nil {
		return RoundReport{}, err
	}

	e.round++
	report := RoundReport{Round: e.round, PetFirst: e.PetActsFirst()}
	if report.PetFirst {
		report.Effects = append(report.Effects, e.petAct(a))
		if e.opponent.Alive() {
			report.Effects = append(report.Effects, e.opponentAct())
		}
	} else {
		report.Effects = append(report.Effects, e.opponentAct())
		if e.pet.Alive() {
			report.Effects = append(report.Effects, e.petAct(a))
		}
	}

	if err := e.settle(ctx); err != nil {
		return report, err
	}
	report.Outcome = e.Outcome()
	return report, nil
}

// Run plays rounds from src until the encounter ends.
func (e *Encounter) Run(ctx context.Context, src ActionSource) (Result, error) {
	for !e.Finished() {
		if err := ctx.Err(); err != nil {
			return e.Result(), err
		}
		action, err := src.NextAction(ctx, e)
		if err == nil {
			var report RoundReport
			report, err = e.PlayRound(ctx, action)
			if err == nil {
				src.Resolved(report)
				continue
			}
		}
		if errors.Is(err, ErrInvalidSelection) {
			src.Rejected(err)
			continue
		}
		return e.Result(), err
	}
	return e.Result(), nil
}

func (e *Encounter) petAct(a Action) Effect {
	if a.Kind == ActionItem {
		effect, err := UseItem(e.catalog, e.pet, a.Item)
		if err != nil {
			return Effect{User: e.pet.Name(), Target: e.pet.Name()}
		}
		return effect
	}
	return ApplySkill(e.catalog.Chart, e.dice, e.pet.Skills()[a.Skill], e.pet, e.opponent)
}

// opponentAct is the opponent's basic attack. It uses the attack formula with
// no power and no type multiplier.
func (e *Encounter) opponentAct() Effect {
	damage := attackDamage(e.opponent.Stats().Attack, 0, e.pet.Stats().Defense, rollJitter(e.dice), MatchupNeutral)
	e.pet.Stats().TakeDamage(damage)
	return Effect{
		User:   e.opponent.Name(),
		Target: e.pet.Name(),
		Skill:  basicAttack,
		Amount: damage,
	}
}

func (e *Encounter) settle(ctx context.Context) error {
	var event string
	switch {
	case !e.opponent.Alive():
		event = eventVanquish
	case !e.pet.Alive():
		event = eventFall
	default:
		return nil
	}
	if err := e.machine.Event(ctx, event); err != nil {
		return WrapError(KindInvalidState, "finish encounter", err)
	}
	return nil
}

// revive brings a defeated pet back with a fifth of its max health.
func revive(p *Pet) int {
	p.stats.Health = max(1, p.stats.MaxHealth/5)
	return p.stats.Health
}
