package game

// ExperiencePerLevel is the experience that triggers a level-up.
const ExperiencePerLevel = 12

// LevelUp reports one level gained.
type LevelUp struct {
	Level   int
	Learned []Skill
}

// GainExperience adds experience and levels the pet up at most once.
// Experience beyond the threshold is discarded, not carried over.
func GainExperience(p *Pet, amount int) *LevelUp {
	if amount <= 0 {
		return nil
	}
	p.experience += amount
	if p.experience < ExperiencePerLevel {
		return nil
	}
	up := LevelUpPet(p)
	return &up
}

// LevelUpPet raises the pet one level, resets experience and restores health.
func LevelUpPet(p *Pet) LevelUp {
	known := len(p.Skills())
	p.level++
	p.experience = 0
	p.recomputeStats()
	p.stats.Health = p.stats.MaxHealth

	skills := p.Skills()
	var learned []Skill
	if len(skills) > known {
		learned = append(learned, skills[known:]...)
	}
	return LevelUp{Level: p.level, Learned: learned}
}
