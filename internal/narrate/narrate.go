// Package narrate turns engine reports into player-facing text. Both the
// console and the terminal UI print through it so they read the same.
package narrate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pet-world/internal/game"
)

// Narrator formats numbers for one language.
type Narrator struct {
	printer *message.Printer
}

func New(tag language.Tag) *Narrator {
	return &Narrator{printer: message.NewPrinter(tag)}
}

// Default narrates in English.
func Default() *Narrator {
	return New(language.English)
}

// Gold renders an amount with digit grouping, e.g. "1,250 gold".
func (n *Narrator) Gold(amount int) string {
	return n.printer.Sprintf("%d gold", amount)
}

func (n *Narrator) Number(v int) string {
	return n.printer.Sprintf("%d", v)
}

// Effect describes one resolved action. The matchup note, when any, comes first.
func (n *Narrator) Effect(e game.Effect) []string {
	var lines []string
	switch e.Skill.Kind {
	case game.SkillAttack:
		switch e.Matchup {
		case game.MatchupAdvantage:
			lines = append(lines, "Type advantage! Damage increased!")
		case game.MatchupDisadvantage:
			lines = append(lines, "Type disadvantage, damage reduced.")
		}
		lines = append(lines, fmt.Sprintf("%s uses [%s] and deals %s damage!", e.User, e.Skill.Name, n.Number(e.Amount)))
	case game.SkillHeal:
		lines = append(lines, fmt.Sprintf("%s uses [%s] and restores %s HP!", e.User, e.Skill.Name, n.Number(e.Amount)))
	case game.SkillDefenseBuff:
		lines = append(lines, fmt.Sprintf("%s uses [%s], defense raised by %d until the fight ends!", e.User, e.Skill.Name, e.Skill.Power))
	}
	return lines
}

// Round describes a whole round in resolution order.
func (n *Narrator) Round(r game.RoundReport) []string {
	var lines []string
	for _, e := range r.Effects {
		lines = append(lines, n.Effect(e)...)
	}
	return lines
}

// Encounter is the opening line of a fight.
func (n *Narrator) Encounter(o *game.Opponent) string {
	return fmt.Sprintf("Encountered [%s] (Lv.%d / %s)!", o.Name(), o.Level(), o.Element())
}

// Health is the "Ember HP: 70/80 | Tree Sprite HP: 14/48" round header.
func (n *Narrator) Health(e *game.Encounter) string {
	p, o := e.Pet(), e.Opponent()
	return fmt.Sprintf("%s HP: %d/%d | %s HP: %d/%d",
		p.Name(), p.Stats().Health, p.Stats().MaxHealth,
		o.Name(), o.Stats().Health, o.Stats().MaxHealth)
}

// Result summarises how a fight ended and what it paid.
func (n *Narrator) Result(pet *game.Pet, opponent *game.Opponent, r game.Result) []string {
	var lines []string
	switch r.Outcome {
	case game.OutcomePetVictory:
		lines = append(lines, fmt.Sprintf("%s defeated %s!", pet.Name(), opponent.Name()))
		switch r.Rewards.Tier {
		case game.RewardHighRisk:
			lines = append(lines, "Challenged a higher-level opponent, rewards greatly increased!")
		case game.RewardLowValue:
			lines = append(lines, "Challenged a lower-level opponent, rewards significantly reduced.")
		}
		lines = append(lines,
			fmt.Sprintf("%s gains %s experience points!", pet.Name(), n.Number(r.Rewards.Experience)),
			fmt.Sprintf("%s gains %s!", pet.Name(), n.Gold(r.Rewards.Gold)),
		)
		if r.LevelUp != nil {
			lines = append(lines, n.LevelUp(pet.Name(), *r.LevelUp)...)
		}
	case game.OutcomePetDefeated:
		lines = append(lines,
			fmt.Sprintf("%s has been defeated...", pet.Name()),
			fmt.Sprintf("%s regains some strength (%d HP) and can continue the adventure!", pet.Name(), r.RevivedHealth),
		)
	}
	return lines
}

func (n *Narrator) LevelUp(name string, up game.LevelUp) []string {
	lines := []string{fmt.Sprintf("%s levels up to %d!", name, up.Level)}
	for _, s := range up.Learned {
		lines = append(lines, fmt.Sprintf("%s learns the skill [%s]!", name, s.Name))
	}
	return lines
}

// Status is the pet sheet shown from the main menu.
func (n *Narrator) Status(p *game.Pet) []string {
	st := p.Stats()
	skills := make([]string, 0, len(p.Skills()))
	for _, s := range p.Skills() {
		skills = append(skills, s.Name)
	}
	return []string{
		fmt.Sprintf("%s Lv.%d (%s)", p.Name(), p.Level(), p.Element()),
		fmt.Sprintf("HP: %d/%d  Attack: %g  Defense: %g  Speed: %g", st.Health, st.MaxHealth, st.Attack, st.Defense, st.Speed),
		fmt.Sprintf("Experience: %d/%d  Gold: %s", p.Experience(), game.ExperiencePerLevel, n.Number(p.Gold())),
		"Skills: " + strings.Join(skills, ", "),
		"Items: " + n.Items(p),
	}
}

// Items lists held items as "Small Healing Potion x2", or "None".
func (n *Narrator) Items(p *game.Pet) string {
	names := p.ItemNames()
	if len(names) == 0 {
		return "None"
	}
	inv := p.Inventory()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s x%d", name, inv[name]))
	}
	return strings.Join(parts, ", ")
}

// Location is one line of the exploration menu.
func (n *Narrator) Location(v game.LocationView) string {
	line := fmt.Sprintf("%s (%s) Recommended Level: %d-%d", v.Location.Name, v.Location.Element, v.Band.Min, v.Band.Max)
	if v.Advisory != game.AdvisoryBalanced {
		line += " [" + v.Advisory.String() + "]"
	}
	return line
}
