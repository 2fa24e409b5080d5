package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + strings.Join(p.registry.Canonicals(), ", ") + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	args := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		args = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	if def.Target != TargetNone && len(args) > 0 {
		joined := strings.Join(args, " ")
		m, ok := Resolve(joined, targetOptions(ctx, def.Target))
		switch {
		case len(m.Candidates) > 1:
			options := make([]Intent, 0, len(m.Candidates))
			for i, cand := range m.Candidates {
				options = append(options, Intent{
					Raw:        raw,
					Kind:       intent.Kind,
					Verb:       intent.Verb,
					Args:       []string{cand},
					Confidence: m.Confidence - float64(i)*0.01,
				})
			}
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Which one should I %s?", intent.Verb), Options: options}
			intent.Confidence = 0.5
			return intent
		case ok:
			intent.Args = []string{m.Value}
			intent.Confidence = clampScore((intent.Confidence * 0.75) + (m.Confidence * 0.25))
		default:
			// Left unresolved; the caller rejects names it does not know.
			intent.Args = []string{joined}
			intent.Confidence = clampScore(intent.Confidence - 0.1)
		}
	} else if len(args) > 0 {
		intent.Args = append([]string(nil), args...)
		if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
			intent.Args = intent.Args[:def.MaxArgs]
			intent.Confidence = clampScore(intent.Confidence - 0.05)
		}
	}

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		if options := targetOptions(ctx, def.Target); len(options) > 0 {
			intent.Clarify.Prompt = fmt.Sprintf("What should I %s?", def.Canonical)
			for _, opt := range options {
				intent.Clarify.Options = append(intent.Clarify.Options, Intent{
					Raw:        raw,
					Kind:       intent.Kind,
					Verb:       intent.Verb,
					Args:       []string{opt},
					Confidence: 0.46,
				})
			}
		}
		intent.Confidence = 0.42
	}
	return intent
}

func commandKind(verb string) IntentKind {
	if verb == "help" {
		return Help
	}
	return Command
}

func targetOptions(ctx ParseContext, t Target) []string {
	switch t {
	case TargetLocation:
		return ctx.Locations
	case TargetItem:
		return ctx.Items
	case TargetSkill:
		return ctx.Skills
	default:
		return nil
	}
}

// Resolve matches typed input against a list of options. It accepts a
// 1-based number, the exact name, a unique prefix, a word of the name or a
// near miss within the edit limit. ok is false when nothing matches or when
// several options tie; ties are listed in Match.Candidates.
func Resolve(raw string, options []string) (Match, bool) {
	token := normaliseInput(raw)
	if token == "" || len(options) == 0 {
		return Match{Index: -1}, false
	}
	if n, ok := parseOrdinal(token); ok {
		if n > len(options) {
			return Match{Index: -1}, false
		}
		return Match{Index: n - 1, Value: options[n-1], Confidence: 1}, true
	}

	type scored struct {
		index int
		score float64
	}
	results := make([]scored, 0, len(options))
	for i, opt := range options {
		cand := normaliseInput(opt)
		if cand == "" {
			continue
		}
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		case containsWordPrefix(cand, token) && len(token) >= 3:
			score = 0.8
		case len(token) >= 3:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist <= levenshteinLimit(len(cand)) {
				score = 0.72 - (0.08 * float64(dist))
			}
		}
		if score > 0 {
			results = append(results, scored{index: i, score: score})
		}
	}
	if len(results) == 0 {
		return Match{Index: -1}, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	best := results[0]
	var tied []string
	for _, r := range results {
		if r.score == best.score {
			tied = append(tied, options[r.index])
		}
	}
	if len(tied) > 1 {
		return Match{Index: -1, Confidence: best.score, Candidates: tied}, false
	}
	return Match{Index: best.index, Value: options[best.index], Confidence: best.score}, true
}

func containsWordPrefix(value, prefix string) bool {
	for _, word := range tokenise(value) {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back into the canonical command form.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
