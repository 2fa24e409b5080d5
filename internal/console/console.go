// Package console runs the game as a line-oriented loop over any reader and
// writer. Every prompt accepts a menu number, a name or a close misspelling.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/narrate"
	"github.com/appengine-ltd/pet-world/internal/parser"
)

// Store is the persistence the console needs.
type Store interface {
	Load(ctx context.Context, name string) (game.PetState, error)
	Save(ctx context.Context, state game.PetState) error
	List(ctx context.Context) ([]string, error)
}

var errQuit = errors.New("quit")

const newPetOption = "Create new pet"

type Console struct {
	in     *bufio.Reader
	out    io.Writer
	world  *game.World
	store  Store
	parser *parser.Parser
	text   *narrate.Narrator
	pet    *game.Pet
}

func New(in io.Reader, out io.Writer, world *game.World, st Store) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		world:  world,
		store:  st,
		parser: parser.New(),
		text:   narrate.Default(),
	}
}

// Pet is the active pet, nil before one is chosen.
func (c *Console) Pet() *game.Pet { return c.pet }

// Run plays until the player quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println("Pet World")
	pet, err := c.choosePet(ctx)
	if err != nil {
		return ignoreEOF(err)
	}
	c.pet = pet

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println("")
		c.println("======= Main Menu =======")
		c.println("1. Explore  2. Check Status  3. Shop  4. Save Game  5. Quit")
		line, err := c.prompt("Select action: ")
		if err != nil {
			return ignoreEOF(err)
		}
		if err := c.dispatch(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				c.println("Thanks for playing!")
				return nil
			}
			return ignoreEOF(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, line string) error {
	switch strings.TrimSpace(line) {
	case "1":
		return c.explore(ctx, "")
	case "2":
		c.showStatus()
		return nil
	case "3":
		return c.shop()
	case "4":
		c.save(ctx)
		return nil
	case "5":
		return errQuit
	}

	intent := c.parser.Parse(c.parseContext(), line)
	if intent.Clarify != nil {
		c.clarify(intent.Clarify)
		return nil
	}
	arg := strings.Join(intent.Args, " ")
	switch intent.Verb {
	case "help":
		c.println("Commands: explore [location], status, shop, buy <item>, upgrade <attribute>, heal [amount], use <item>, save, quit")
	case "explore":
		return c.explore(ctx, arg)
	case "status", "inventory":
		c.showStatus()
	case "shop":
		return c.shop()
	case "buy":
		c.buy(arg)
	case "upgrade":
		c.upgrade(arg)
	case "heal":
		return c.heal(arg)
	case "use":
		c.useItem(arg)
	case "save":
		c.save(ctx)
	case "quit":
		return errQuit
	case "skill":
		c.println("There is nothing to fight here. Explore to find an opponent.")
	}
	return nil
}

func (c *Console) parseContext() parser.ParseContext {
	items := make([]string, 0, len(c.world.Catalog.Items))
	for _, item := range c.world.Catalog.Items {
		items = append(items, item.Name)
	}
	return parser.ParseContext{
		Locations: c.world.Catalog.LocationNames(),
		Items:     items,
	}
}

func (c *Console) clarify(q *parser.ClarifyQuestion) {
	c.println(q.Prompt)
	for i, opt := range q.Options {
		c.printf("  %d. %s\n", i+1, parser.IntentToCommandString(opt))
	}
}

func (c *Console) choosePet(ctx context.Context) (*game.Pet, error) {
	names, err := c.store.List(ctx)
	if err != nil {
		log.Printf("console: list saves: %v", err)
		c.println("Could not read saved pets: " + err.Error())
		names = nil
	}
	if len(names) == 0 {
		return c.createPet()
	}

	options := append(append([]string(nil), names...), newPetOption)
	for {
		c.println("Existing saves:")
		for i, opt := range options {
			c.printf("%d. %s\n", i+1, opt)
		}
		line, err := c.prompt("Select number: ")
		if err != nil {
			return nil, err
		}
		m, ok := parser.Resolve(line, options)
		if !ok {
			c.println("Invalid selection.")
			continue
		}
		if m.Value == newPetOption {
			return c.createPet()
		}
		pet, err := c.loadPet(ctx, m.Value)
		if err != nil {
			c.println("Could not load " + m.Value + ": " + err.Error())
			continue
		}
		c.println("Welcome back, " + pet.Name() + "!")
		return pet, nil
	}
}

func (c *Console) loadPet(ctx context.Context, name string) (*game.Pet, error) {
	state, err := c.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return game.RestorePet(state)
}

func (c *Console) createPet() (*game.Pet, error) {
	name, err := c.prompt("Enter pet name (blank for a random one): ")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		name = game.RandomPetName(c.world.Dice)
	}

	elements := game.Elements()
	labels := make([]string, 0, len(elements))
	for _, e := range elements {
		labels = append(labels, string(e))
	}
	for {
		var b strings.Builder
		b.WriteString("Select type:")
		for i, l := range labels {
			fmt.Fprintf(&b, " %d.%s", i+1, l)
		}
		line, err := c.prompt(b.String() + ": ")
		if err != nil {
			return nil, err
		}
		m, ok := parser.Resolve(line, labels)
		if !ok {
			c.println("Invalid selection.")
			continue
		}
		pet, err := game.NewPet(name, elements[m.Index])
		if err != nil {
			return nil, err
		}
		c.printf("%s the %s pet is ready for adventure!\n", pet.Name(), pet.Element())
		return pet, nil
	}
}

func (c *Console) showStatus() {
	for _, line := range c.text.Status(c.pet) {
		c.println(line)
	}
}

func (c *Console) save(ctx context.Context) {
	if err := c.store.Save(ctx, c.pet.State()); err != nil {
		log.Printf("console: save %s: %v", c.pet.Name(), err)
		c.println("Error saving game: " + err.Error())
		return
	}
	c.println("Game saved as " + c.pet.Name())
}

func (c *Console) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) confirm(question string) (bool, error) {
	line, err := c.prompt(question + " (y/n) ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
