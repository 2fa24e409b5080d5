package parser

type IntentKind int

const (
	Command IntentKind = iota
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the names the player can currently refer to.
type ParseContext struct {
	Locations []string
	Items     []string
	Skills    []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// Target names the context list the first argument is resolved against.
	Target Target
}

type Target int

const (
	TargetNone Target = iota
	TargetLocation
	TargetItem
	TargetSkill
)

// Match is the outcome of resolving a typed choice against a list of options.
type Match struct {
	Index      int
	Value      string
	Confidence float64
	// Candidates holds the tied options when the input was ambiguous.
	Candidates []string
}
