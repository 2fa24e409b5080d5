package game

type Advisory int

const (
	AdvisoryBalanced Advisory = iota
	AdvisoryUnderleveled
	AdvisoryOverleveled
)

func (a Advisory) String() string {
	switch a {
	case AdvisoryBalanced:
		return "Balanced"
	case AdvisoryUnderleveled:
		return "Underleveled"
	case AdvisoryOverleveled:
		return "Overleveled"
	default:
		return "Unknown"
	}
}

// Warning is the player-facing caution for an advisory, empty when balanced.
func (a Advisory) Warning() string {
	switch a {
	case AdvisoryUnderleveled:
		return "Your pet's level is below the recommended minimum for this area. This will be very difficult!"
	case AdvisoryOverleveled:
		return "Your pet's level is above the recommended maximum for this area. Experience and gold rewards will be significantly reduced."
	default:
		return ""
	}
}

// AssessLocation compares the pet's level to a scaled band.
func AssessLocation(petLevel int, band LevelRange) Advisory {
	switch {
	case petLevel < band.Min:
		return AdvisoryUnderleveled
	case petLevel > band.Max:
		return AdvisoryOverleveled
	default:
		return AdvisoryBalanced
	}
}
