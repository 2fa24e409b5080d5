package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/pet-world/internal/game"
)

const (
	optionUseItem  = "Use Item"
	optionContinue = "Continue"
	battleLogSize  = 12
)

func (m menuModel) startBattle() (tea.Model, tea.Cmd) {
	m.status = ""
	enc, err := m.world.Explore(m.pending.Location.Name, m.pet)
	if err != nil {
		m.status = err.Error()
		return m.goTo(screenMap), nil
	}
	m.enc = enc
	m.log = []string{m.text.Encounter(enc.Opponent())}
	return m.goTo(screenBattle), nil
}

func (m menuModel) battleOptions() []string {
	if m.enc == nil || m.enc.Finished() {
		return []string{optionContinue}
	}
	skills := m.pet.Skills()
	out := make([]string, 0, len(skills)+1)
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return append(out, optionUseItem)
}

func (m menuModel) itemOptions() []string {
	inv := m.pet.Inventory()
	names := m.pet.ItemNames()
	out := make([]string, 0, len(names)+1)
	for _, name := range names {
		out = append(out, fmt.Sprintf("%s x%d", name, inv[name]))
	}
	return append(out, optionBack)
}

func (m menuModel) chooseBattle(i int) (tea.Model, tea.Cmd) {
	if m.enc.Finished() {
		m.enc = nil
		m.log = nil
		return m.goTo(screenMenu), nil
	}
	if i == len(m.pet.Skills()) {
		if len(m.pet.ItemNames()) == 0 {
			// Let the encounter reject it so the wording matches the console.
			return m.playRound(game.ItemAction(""))
		}
		return m.goTo(screenItems), nil
	}
	return m.playRound(game.SkillAction(i))
}

func (m menuModel) chooseItem(i int) (tea.Model, tea.Cmd) {
	names := m.pet.ItemNames()
	if i >= len(names) {
		return m.goTo(screenBattle), nil
	}
	next, cmd := m.playRound(game.ItemAction(names[i]))
	return next.(menuModel).goTo(screenBattle), cmd
}

func (m menuModel) playRound(a game.Action) (tea.Model, tea.Cmd) {
	report, err := m.enc.PlayRound(m.ctx, a)
	if err != nil {
		if errors.Is(err, game.ErrInvalidSelection) {
			m.status = "Invalid selection: " + err.Error()
			return m, nil
		}
		m.status = err.Error()
		return m, nil
	}
	m.appendLog(fmt.Sprintf("--- Round %d ---", report.Round))
	m.appendLog(m.text.Round(report)...)
	if m.enc.Finished() {
		m.appendLog(m.text.Result(m.pet, m.enc.Opponent(), m.enc.Result())...)
	}
	m.idx = 0
	return m, nil
}

func (m *menuModel) appendLog(lines ...string) {
	m.log = append(m.log, lines...)
	if over := len(m.log) - battleLogSize; over > 0 {
		m.log = append([]string(nil), m.log[over:]...)
	}
}

func (m menuModel) battleText() string {
	if m.enc == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(brightGreen.Render(m.text.Health(m.enc)) + "\n\n")
	for _, line := range m.log {
		b.WriteString(green.Render(line) + "\n")
	}
	b.WriteString("\n")
	if m.screen == screenItems {
		b.WriteString(green.Render("Your Inventory:") + "\n")
	} else if !m.enc.Finished() {
		b.WriteString(green.Render("Select a skill:") + "\n")
	}
	return b.String()
}
