package particlebox

// Step is a plus/minus control action.
type Step string

const (
	StepNone  Step = ""
	StepPlus  Step = "plus"
	StepMinus Step = "minus"
)

// Stepper applies a Step to a level clamped to [MinLevel, MaxLevel]. At the
// bounds the level is left unchanged.
func Stepper(p int, step Step) int {
	p = ClampLevel(p)
	switch step {
	case StepPlus:
		if p < MaxLevel {
			return p + 1
		}
	case StepMinus:
		if p > MinLevel {
			return p - 1
		}
	}
	return p
}

// ClampLevel forces p into [MinLevel, MaxLevel].
func ClampLevel(p int) int {
	return min(max(p, MinLevel), MaxLevel)
}
