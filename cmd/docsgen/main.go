package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := generateDocs(game.DefaultCatalog())
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateDocs(c *game.Catalog) []docFile {
	return []docFile{
		generateLocationsDoc(c),
		generateItemsDoc(c),
		generateSkillsDoc(),
		generateElementsDoc(c.Chart),
	}
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateLocationsDoc(c *game.Catalog) docFile {
	var b strings.Builder
	b.WriteString("# Locations\n\n")
	b.WriteString("Source: `internal/game/catalog.yaml` (`DefaultCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total locations: **%d**. Bands shift upward once a pet passes level 4.\n\n", len(c.Locations)))
	b.WriteString("| Name | Element | Base Levels | Roster |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, loc := range c.Locations {
		b.WriteString("| ")
		b.WriteString(escape(loc.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(loc.Element)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d-%d", loc.Levels.Min, loc.Levels.Max))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(loc.Roster, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "locations.md", Title: "Locations", Content: b.String()}
}

func generateItemsDoc(c *game.Catalog) docFile {
	var b strings.Builder
	b.WriteString("# Shop\n\n")
	b.WriteString("Source: `internal/game/catalog.yaml` (`DefaultCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Upgrades cost **%d** gold. Healing costs **%s** gold per HP.\n\n", c.UpgradeCost, formatFloat(c.HealPricePerHP)))
	b.WriteString("| Item | Heals | Price |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, item := range c.Items {
		b.WriteString(fmt.Sprintf("| %s | %d | %d |\n", escape(item.Name), item.Heal, item.Price))
	}

	b.WriteString("\n| Upgrade |\n| --- |\n")
	for _, a := range game.Attributes() {
		b.WriteString("| " + escape(a.Label()) + " |\n")
	}

	return docFile{Name: "shop.md", Title: "Shop", Content: b.String()}
}

func generateSkillsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Skills\n\n")
	b.WriteString("Source: `internal/game/skill.go` (`SkillsForLevel`).\n\n")
	b.WriteString("| Element | Skill | Kind | Power | Learned At |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range game.Elements() {
		for _, u := range skillUnlocks(e) {
			b.WriteString("| ")
			b.WriteString(escape(string(e)))
			b.WriteString(" | ")
			b.WriteString(escape(u.skill.Name))
			b.WriteString(" | ")
			b.WriteString(u.skill.Kind.String())
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("%d", u.skill.Power))
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("%d", u.level))
			b.WriteString(" |\n")
		}
	}

	return docFile{Name: "skills.md", Title: "Skills", Content: b.String()}
}

type skillUnlock struct {
	skill game.Skill
	level int
}

// skillUnlocks lists an element's skills with the first level that has each.
func skillUnlocks(e game.Element) []skillUnlock {
	seen := map[string]bool{}
	var out []skillUnlock
	for level := 1; level <= game.AdvancedUnlockLevel; level++ {
		for _, s := range game.SkillsForLevel(e, level) {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			out = append(out, skillUnlock{skill: s, level: level})
		}
	}
	return out
}

func generateElementsDoc(chart game.ElementChart) docFile {
	elements := game.Elements()
	var b strings.Builder
	b.WriteString("# Element Matchups\n\n")
	b.WriteString("Rows attack, columns defend. Advantage multiplies damage by ")
	b.WriteString(formatFloat(game.MatchupAdvantage.Multiplier()))
	b.WriteString(", disadvantage by ")
	b.WriteString(formatFloat(game.MatchupDisadvantage.Multiplier()))
	b.WriteString(".\n\n")

	b.WriteString("| Attacker |")
	for _, e := range elements {
		b.WriteString(" " + string(e) + " |")
	}
	b.WriteString("\n| --- |")
	for range elements {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, atk := range elements {
		b.WriteString("| " + string(atk) + " |")
		for _, def := range elements {
			b.WriteString(" " + matchupMark(chart.Matchup(atk, def)) + " |")
		}
		b.WriteString("\n")
	}

	return docFile{Name: "elements.md", Title: "Element Matchups", Content: b.String()}
}

func matchupMark(m game.Matchup) string {
	switch m {
	case game.MatchupAdvantage:
		return "+"
	case game.MatchupDisadvantage:
		return "-"
	default:
		return ""
	}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
