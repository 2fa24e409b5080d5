package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/parser"
)

func (c *Console) shop() error {
	for {
		c.println("")
		c.printf("Shop (Gold: %s)\n", c.text.Number(c.pet.Gold()))
		c.printf("%s HP: %d/%d\n", c.pet.Name(), c.pet.Stats().Health, c.pet.Stats().MaxHealth)
		c.println("1. Buy Items")
		c.println("2. Upgrade Attributes")
		c.println("3. Restore HP")
		c.println("4. Exit")
		line, err := c.prompt("Select an action: ")
		if err != nil {
			return err
		}
		switch strings.ToLower(line) {
		case "1", "buy":
			if err := c.buyMenu(); err != nil {
				return err
			}
		case "2", "upgrade":
			if err := c.upgradeMenu(); err != nil {
				return err
			}
		case "3", "heal", "restore":
			if err := c.heal(""); err != nil {
				return err
			}
		case "4", "", "exit", "back":
			return nil
		default:
			c.println("Invalid selection.")
		}
	}
}

func (c *Console) buyMenu() error {
	items := c.world.Catalog.Items
	for i, item := range items {
		c.printf("%d. %s - Restores %d HP - %s\n", i+1, item.Name, item.Heal, c.text.Gold(item.Price))
	}
	line, err := c.prompt("Enter number to buy (or press Enter to exit): ")
	if err != nil || line == "" {
		return err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	m, ok := parser.Resolve(line, names)
	if !ok {
		c.println("Invalid selection.")
		return nil
	}
	c.buy(m.Value)
	return nil
}

func (c *Console) buy(name string) {
	item, err := c.world.Shop.Purchase(c.pet, name)
	if err != nil {
		c.reportShopError(err)
		return
	}
	c.println("Purchased " + item.Name)
}

func (c *Console) upgradeMenu() error {
	attrs := game.Attributes()
	labels := make([]string, 0, len(attrs))
	for i, a := range attrs {
		labels = append(labels, a.Label())
		c.printf("%d. %s\n", i+1, a.Label())
	}
	line, err := c.prompt(fmt.Sprintf("Spend %s to select an upgrade: ", c.text.Gold(c.world.Catalog.UpgradeCost)))
	if err != nil || line == "" {
		return err
	}
	if m, ok := parser.Resolve(line, labels); ok {
		line = string(attrs[m.Index])
	}
	c.upgrade(line)
	return nil
}

func (c *Console) upgrade(raw string) {
	attr, err := game.ParseAttribute(raw)
	if err != nil {
		c.println("Invalid selection.")
		return
	}
	if err := c.world.Shop.Upgrade(c.pet, attr); err != nil {
		c.reportShopError(err)
		return
	}
	stat := strings.SplitN(attr.Label(), " +", 2)[0]
	c.printf("%s increased! %s left.\n", stat, c.text.Gold(c.pet.Gold()))
}

// heal restores a typed amount, or offers full and partial restores when
// amount is blank.
func (c *Console) heal(amount string) error {
	st := c.pet.Stats()
	missing := st.MaxHealth - st.Health
	if missing == 0 {
		c.println("Your pet is already at full HP!")
		return nil
	}
	if amount == "" {
		c.printf("Restoring full HP costs %s\n", c.text.Gold(c.world.Shop.FullRestoreCost(c.pet)))
		c.println("1. Restore full HP")
		c.println("2. Partial restore")
		choice, err := c.prompt("Select: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			amount = strconv.Itoa(missing)
		case "2":
			amount, err = c.prompt(fmt.Sprintf("Enter HP amount to restore (1-%d): ", missing))
			if err != nil {
				return err
			}
		default:
			return nil
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		c.println("Invalid input, please enter a number")
		return nil
	}
	if err := c.world.Shop.RestoreHealth(c.pet, n); err != nil {
		c.reportShopError(err)
		return nil
	}
	if c.pet.Stats().Health == c.pet.Stats().MaxHealth {
		c.printf("%s has been fully restored!\n", c.pet.Name())
	} else {
		c.printf("%s restored %d HP!\n", c.pet.Name(), n)
	}
	return nil
}

func (c *Console) useItem(name string) {
	effect, err := game.UseItem(c.world.Catalog, c.pet, name)
	if err != nil {
		c.reportShopError(err)
		return
	}
	for _, line := range c.text.Effect(effect) {
		c.println(line)
	}
}

func (c *Console) reportShopError(err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientGold):
		c.println("Insufficient gold: " + err.Error())
	default:
		c.println(err.Error())
	}
}
