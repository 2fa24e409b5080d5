package game

// Level gap at which rewards are boosted or cut.
const rewardLevelGap = 3

type RewardTier int

const (
	RewardStandard RewardTier = iota
	RewardHighRisk
	RewardLowValue
)

func (t RewardTier) String() string {
	switch t {
	case RewardStandard:
		return "Standard"
	case RewardHighRisk:
		return "High risk"
	case RewardLowValue:
		return "Low value"
	default:
		return "Unknown"
	}
}

func (t RewardTier) Multiplier() float64 {
	switch t {
	case RewardHighRisk:
		return 1.8
	case RewardLowValue:
		return 0.4
	default:
		return 1.0
	}
}

// Rewards is the experience and gold paid for a victory.
type Rewards struct {
	Experience int
	Gold       int
	Tier       RewardTier
}

// RewardFor prices a victory from the opponent's level relative to the pet's.
func RewardFor(opponentLevel, petLevel int) Rewards {
	diff := opponentLevel - petLevel
	tier := RewardStandard
	switch {
	case diff >= rewardLevelGap:
		tier = RewardHighRisk
	case diff <= -rewardLevelGap:
		tier = RewardLowValue
	}
	m := tier.Multiplier()
	return Rewards{
		Experience: max(1, int(float64(opponentLevel*10)*m)),
		Gold:       max(1, int(float64(opponentLevel*8)*m)),
		Tier:       tier,
	}
}
