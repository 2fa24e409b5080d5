package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/pet-world/internal/game"
)

// shopOptions lists every item, then every upgrade, then a full restore.
func (m menuModel) shopOptions() []string {
	items := m.world.Catalog.Items
	attrs := game.Attributes()
	out := make([]string, 0, len(items)+len(attrs)+2)
	for _, item := range items {
		out = append(out, fmt.Sprintf("Buy %s (+%d HP) - %s", item.Name, item.Heal, m.text.Gold(item.Price)))
	}
	for _, a := range attrs {
		out = append(out, fmt.Sprintf("Upgrade %s - %s", a.Label(), m.text.Gold(m.world.Catalog.UpgradeCost)))
	}
	out = append(out, fmt.Sprintf("Restore full HP - %s", m.text.Gold(m.world.Shop.FullRestoreCost(m.pet))))
	return append(out, optionBack)
}

func (m menuModel) chooseShop(i int) (tea.Model, tea.Cmd) {
	items := m.world.Catalog.Items
	attrs := game.Attributes()
	switch {
	case i < len(items):
		item, err := m.world.Shop.Purchase(m.pet, items[i].Name)
		if err != nil {
			m.status = shopError(err)
			return m, nil
		}
		m.status = "Purchased " + item.Name
	case i < len(items)+len(attrs):
		attr := attrs[i-len(items)]
		if err := m.world.Shop.Upgrade(m.pet, attr); err != nil {
			m.status = shopError(err)
			return m, nil
		}
		stat := strings.SplitN(attr.Label(), " +", 2)[0]
		m.status = fmt.Sprintf("%s increased! %s left.", stat, m.text.Gold(m.pet.Gold()))
	case i == len(items)+len(attrs):
		st := m.pet.Stats()
		missing := st.MaxHealth - st.Health
		if missing == 0 {
			m.status = "Your pet is already at full HP!"
			return m, nil
		}
		if err := m.world.Shop.RestoreHealth(m.pet, missing); err != nil {
			m.status = shopError(err)
			return m, nil
		}
		m.status = m.pet.Name() + " has been fully restored!"
	default:
		return m.goTo(screenMenu), nil
	}
	return m, nil
}

func shopError(err error) string {
	if errors.Is(err, game.ErrInsufficientGold) {
		return "Insufficient gold: " + err.Error()
	}
	return err.Error()
}
