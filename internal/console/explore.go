package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/parser"
)

func (c *Console) explore(ctx context.Context, arg string) error {
	views := c.world.Locations(c.pet.Level())
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Location.Name)
	}

	if strings.TrimSpace(arg) == "" {
		c.println("Map Selection:")
		for i, v := range views {
			c.printf("%d. %s\n", i+1, c.text.Location(v))
		}
		line, err := c.prompt("Map number (Enter to go back): ")
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		arg = line
	}

	m, ok := parser.Resolve(arg, names)
	if !ok {
		c.println("Invalid map selection.")
		return nil
	}
	view := views[m.Index]
	if warning := view.Advisory.Warning(); warning != "" {
		c.println(warning)
		goOn, err := c.confirm("Continue entering?")
		if err != nil {
			return err
		}
		if !goOn {
			return nil
		}
	}

	enc, err := c.world.Explore(view.Location.Name, c.pet)
	if err != nil {
		c.println(err.Error())
		return nil
	}
	c.println("")
	c.println(c.text.Encounter(enc.Opponent()))

	res, err := enc.Run(ctx, c)
	if err != nil {
		return err
	}
	for _, line := range c.text.Result(c.pet, enc.Opponent(), res) {
		c.println(line)
	}
	return nil
}

// NextAction asks for the pet's move. Input that names nothing valid comes
// back as an invalid selection so the round is asked for again.
func (c *Console) NextAction(_ context.Context, e *game.Encounter) (game.Action, error) {
	c.println("")
	c.printf("--- Round %d ---\n", e.Round()+1)
	c.println(c.text.Health(e))
	skills := e.Pet().Skills()
	names := make([]string, 0, len(skills))
	c.println("Select a skill:")
	for i, s := range skills {
		names = append(names, s.Name)
		c.printf("%d. %s\n", i+1, s.Name)
	}
	c.printf("%d. Use Item\n", len(skills)+1)

	line, err := c.prompt("Skill number or item: ")
	if err != nil {
		return game.Action{}, err
	}
	lower := strings.ToLower(line)
	switch {
	case lower == strconv.Itoa(len(skills)+1), lower == "i", lower == "item", lower == "items":
		return c.chooseItem(e.Pet(), "")
	case strings.HasPrefix(lower, "use "):
		return c.chooseItem(e.Pet(), strings.TrimSpace(line[len("use "):]))
	}
	if n, err := strconv.Atoi(lower); err == nil {
		// Out-of-range numbers are left for the encounter to reject.
		return game.SkillAction(n - 1), nil
	}
	m, ok := parser.Resolve(line, names)
	if !ok {
		return game.Action{}, game.WrapError(game.KindInvalidSelection, "choose skill", fmt.Errorf("no skill matches %q", line))
	}
	return game.SkillAction(m.Index), nil
}

func (c *Console) chooseItem(p *game.Pet, name string) (game.Action, error) {
	items := p.ItemNames()
	if len(items) == 0 {
		return game.ItemAction(""), nil
	}
	if name == "" {
		inv := p.Inventory()
		c.println("Your Inventory:")
		for i, item := range items {
			c.printf("%d. %s x%d\n", i+1, item, inv[item])
		}
		line, err := c.prompt("Enter item number: ")
		if err != nil {
			return game.Action{}, err
		}
		name = line
	}
	m, ok := parser.Resolve(name, items)
	if !ok {
		return game.ItemAction(name), nil
	}
	return game.ItemAction(m.Value), nil
}

func (c *Console) Rejected(err error) {
	c.println("Invalid selection: " + err.Error())
}

func (c *Console) Resolved(report game.RoundReport) {
	for _, line := range c.text.Round(report) {
		c.println(line)
	}
}
