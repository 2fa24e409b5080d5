package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/narrate"
)

// Store is the persistence the UI needs.
type Store interface {
	Load(ctx context.Context, name string) (game.PetState, error)
	Save(ctx context.Context, state game.PetState) error
	List(ctx context.Context) ([]string, error)
}

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	World     *game.World
	Store     Store
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	m := newMenuModel(ctx, a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const rule = "----------------------------------------"

type screen int

const (
	screenTitle screen = iota
	screenName
	screenElement
	screenMenu
	screenMap
	screenConfirm
	screenBattle
	screenItems
	screenShop
	screenStatus
)

const (
	optionNewPet = "Create new pet"
	optionQuit   = "Quit"
	optionBack   = "Back"
)

var mainMenu = []string{"Explore", "Check Status", "Shop", "Save Game", optionQuit}

type menuModel struct {
	cfg   AppConfig
	ctx   context.Context
	world *game.World
	text  *narrate.Narrator

	screen screen
	idx    int
	status string
	busy   bool

	saves   []string
	name    textinput.Model
	petName string
	pet     *game.Pet

	views   []game.LocationView
	pending game.LocationView
	enc     *game.Encounter
	log     []string
}

func newMenuModel(ctx context.Context, cfg AppConfig) menuModel {
	ti := textinput.New()
	ti.Placeholder = "blank for a random name"
	ti.CharLimit = 24
	ti.Width = 28
	return menuModel{
		cfg:   cfg,
		ctx:   ctx,
		world: cfg.World,
		text:  narrate.Default(),
		name:  ti,
		busy:  true,
	}
}

type savesLoadedMsg struct {
	names []string
	err   error
}

type petLoadedMsg struct {
	pet *game.Pet
	err error
}

type savedMsg struct {
	name string
	err  error
}

func (m menuModel) Init() tea.Cmd {
	return listSavesCmd(m.ctx, m.cfg.Store)
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not read saved pets: %v", msg.err)
		}
		m.saves = msg.names
		if len(m.saves) == 0 {
			return m.openNameEntry()
		}
		return m, nil
	case petLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load pet: %v", msg.err)
			return m, nil
		}
		m.pet = msg.pet
		m.status = "Welcome back, " + m.pet.Name() + "!"
		return m.goTo(screenMenu), nil
	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving game: %v", msg.err)
			return m, nil
		}
		m.status = "Game saved as " + msg.name
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			// Ignore input while storage runs.
			return m, nil
		}
		if m.screen == screenName {
			return m.updateName(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.options()
	switch key := msg.String(); key {
	case "q":
		if m.screen == screenBattle || m.screen == screenItems {
			return m, nil
		}
		return m, tea.Quit
	case "esc":
		return m.back(), nil
	case "i":
		if m.screen == screenBattle && m.enc != nil && !m.enc.Finished() {
			return m.choose(len(m.pet.Skills()))
		}
		return m, nil
	case "up", "k":
		if len(opts) > 0 {
			m.idx = (m.idx + len(opts) - 1) % len(opts)
		}
		return m, nil
	case "down", "j":
		if len(opts) > 0 {
			m.idx = (m.idx + 1) % len(opts)
		}
		return m, nil
	case "enter":
		if m.idx < len(opts) {
			return m.choose(m.idx)
		}
		return m, nil
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '1')
			if n < len(opts) {
				m.idx = n
				return m.choose(n)
			}
		}
	}
	return m, nil
}

func (m menuModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if len(m.saves) > 0 {
			m.name.Blur()
			return m.goTo(screenTitle), nil
		}
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.name.Value())
		if name == "" {
			name = game.RandomPetName(m.world.Dice)
		}
		m.petName = name
		m.name.Blur()
		return m.goTo(screenElement), nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m menuModel) openNameEntry() (tea.Model, tea.Cmd) {
	m = m.goTo(screenName)
	m.name.SetValue("")
	cmd := m.name.Focus()
	return m, cmd
}

func (m menuModel) goTo(s screen) menuModel {
	m.screen = s
	m.idx = 0
	return m
}

func (m menuModel) back() menuModel {
	switch m.screen {
	case screenElement:
		return m.goTo(screenTitle)
	case screenMap, screenShop, screenStatus:
		return m.goTo(screenMenu)
	case screenConfirm:
		return m.goTo(screenMap)
	case screenItems:
		return m.goTo(screenBattle)
	}
	return m
}

// options lists the selectable lines for the current screen.
func (m menuModel) options() []string {
	switch m.screen {
	case screenTitle:
		return append(append([]string(nil), m.saves...), optionNewPet, optionQuit)
	case screenElement:
		elements := game.Elements()
		out := make([]string, 0, len(elements))
		for _, e := range elements {
			out = append(out, string(e))
		}
		return out
	case screenMenu:
		return mainMenu
	case screenMap:
		out := make([]string, 0, len(m.views)+1)
		for _, v := range m.views {
			out = append(out, m.text.Location(v))
		}
		return append(out, optionBack)
	case screenConfirm:
		return []string{"Continue entering", "Turn back"}
	case screenBattle:
		return m.battleOptions()
	case screenItems:
		return m.itemOptions()
	case screenShop:
		return m.shopOptions()
	case screenStatus:
		return []string{optionBack}
	}
	return nil
}

func (m menuModel) choose(i int) (tea.Model, tea.Cmd) {
	m.status = ""
	switch m.screen {
	case screenTitle:
		switch {
		case i < len(m.saves):
			m.busy = true
			return m, loadPetCmd(m.ctx, m.cfg.Store, m.saves[i])
		case i == len(m.saves):
			return m.openNameEntry()
		default:
			return m, tea.Quit
		}
	case screenElement:
		pet, err := game.NewPet(m.petName, game.Elements()[i])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pet = pet
		m.status = fmt.Sprintf("%s the %s pet is ready for adventure!", pet.Name(), pet.Element())
		return m.goTo(screenMenu), nil
	case screenMenu:
		switch mainMenu[i] {
		case "Explore":
			m.views = m.world.Locations(m.pet.Level())
			return m.goTo(screenMap), nil
		case "Check Status":
			return m.goTo(screenStatus), nil
		case "Shop":
			return m.goTo(screenShop), nil
		case "Save Game":
			m.busy = true
			return m, saveCmd(m.ctx, m.cfg.Store, m.pet.State())
		default:
			return m, tea.Quit
		}
	case screenMap:
		if i == len(m.views) {
			return m.goTo(screenMenu), nil
		}
		m.pending = m.views[i]
		if warning := m.pending.Advisory.Warning(); warning != "" {
			m.status = warning
			return m.goTo(screenConfirm), nil
		}
		return m.startBattle()
	case screenConfirm:
		if i == 0 {
			return m.startBattle()
		}
		return m.goTo(screenMap), nil
	case screenBattle:
		return m.chooseBattle(i)
	case screenItems:
		return m.chooseItem(i)
	case screenShop:
		return m.chooseShop(i)
	case screenStatus:
		return m.goTo(screenMenu), nil
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render("PET WORLD"))
	if m.cfg.Version != "" {
		b.WriteString(dimGreen.Render(fmt.Sprintf("  v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate)))
	}
	b.WriteString("\n" + border.Render(rule) + "\n\n")

	if m.busy {
		b.WriteString(dimGreen.Render("Working…") + "\n")
		return b.String()
	}

	b.WriteString(m.bodyText())

	if m.screen == screenName {
		b.WriteString(green.Render("Name your pet:") + "\n")
		b.WriteString(m.name.View() + "\n")
	} else {
		for i, opt := range m.options() {
			cursor := "  "
			line := green.Render(fmt.Sprintf("%d. %s", i+1, opt))
			if i == m.idx {
				cursor = "> "
				line = brightGreen.Render(fmt.Sprintf("%d. %s", i+1, opt))
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString("\n" + border.Render(rule) + "\n")
	b.WriteString(dimGreen.Render(m.helpLine()) + "\n")
	if m.status != "" {
		b.WriteString("\n" + alertStyle.Render(m.status) + "\n")
	}
	return b.String()
}

// bodyText is the screen-specific text above the option list.
func (m menuModel) bodyText() string {
	var b strings.Builder
	switch m.screen {
	case screenTitle:
		b.WriteString(green.Render("Existing saves:") + "\n")
	case screenElement:
		b.WriteString(green.Render("Select a type for "+m.petName+":") + "\n")
	case screenMenu:
		st := m.pet.Stats()
		b.WriteString(green.Render(fmt.Sprintf("%s Lv.%d  HP %d/%d  %s", m.pet.Name(), m.pet.Level(), st.Health, st.MaxHealth, m.text.Gold(m.pet.Gold()))) + "\n\n")
	case screenMap:
		b.WriteString(green.Render("Map Selection:") + "\n")
	case screenConfirm:
		b.WriteString(green.Render("Enter "+m.pending.Location.Name+"?") + "\n")
	case screenBattle, screenItems:
		b.WriteString(m.battleText())
	case screenShop:
		b.WriteString(green.Render(fmt.Sprintf("Shop (Gold: %s)  %s HP: %d/%d", m.text.Number(m.pet.Gold()), m.pet.Name(), m.pet.Stats().Health, m.pet.Stats().MaxHealth)) + "\n")
	case screenStatus:
		b.WriteString(renderPetPortraitANSI(m.pet.Element(), m.pet.Level(), 24, 12))
		b.WriteString("\n")
		for _, line := range m.text.Status(m.pet) {
			b.WriteString(green.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m menuModel) helpLine() string {
	switch m.screen {
	case screenName:
		return "Enter to confirm, Esc to go back"
	case screenBattle, screenItems:
		return "↑/↓ or 1-9 to act, Enter to select"
	}
	return "↑/↓ to move, Enter to select, Esc to go back, q to quit"
}

func listSavesCmd(ctx context.Context, st Store) tea.Cmd {
	return func() tea.Msg {
		names, err := st.List(ctx)
		return savesLoadedMsg{names: names, err: err}
	}
}

func loadPetCmd(ctx context.Context, st Store, name string) tea.Cmd {
	return func() tea.Msg {
		state, err := st.Load(ctx, name)
		if err != nil {
			return petLoadedMsg{err: err}
		}
		pet, err := game.RestorePet(state)
		return petLoadedMsg{pet: pet, err: err}
	}
}

func saveCmd(ctx context.Context, st Store, state game.PetState) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{name: state.Name, err: st.Save(ctx, state)}
	}
}
