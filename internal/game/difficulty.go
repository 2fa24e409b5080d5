package game

// scalingStartLevel is the last pet level at which bands stay at their base.
const scalingStartLevel = 4

// ScaleLevelRange shifts a location's base band with the pet's level. The
// upper bound grows one and a half times faster than the lower bound.
func ScaleLevelRange(base LevelRange, petLevel int) LevelRange {
	if petLevel < 1 {
		petLevel = 1
	}
	offset := max(0, petLevel-scalingStartLevel)
	return LevelRange{
		Min: max(1, base.Min+offset),
		Max: int(float64(base.Max) + float64(offset)*1.5),
	}
}
