package game

// Stats is the battle shape shared by pets and opponents.
type Stats struct {
	Health    int
	MaxHealth int
	Attack    float64
	Defense   float64
	Speed     float64
}

// Combatant is anything that can take part in an encounter.
type Combatant interface {
	Name() string
	Element() Element
	Level() int
	Stats() *Stats
	Alive() bool
	// BaseDefense is defense before any in-encounter buff.
	BaseDefense() float64
}

// Alive reports whether health is above zero.
func (s *Stats) Alive() bool {
	return s.Health > 0
}

// TakeDamage lowers health by n, never below zero, and reports the damage dealt.
func (s *Stats) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	before := s.Health
	s.Health = max(0, s.Health-n)
	return before - s.Health
}

// Heal restores up to n health, never above MaxHealth, and reports the amount restored.
func (s *Stats) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	restored := min(n, s.MaxHealth-s.Health)
	if restored < 0 {
		restored = 0
	}
	s.Health += restored
	return restored
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
