package enhance

import "github.com/lixenwraith/anvil/constants"

// Outcome is the result tag of an enhancement attempt
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFail
	OutcomeDestroy
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Resolve maps a draw in [0,100) onto consecutive success, fail and destroy buckets
// Returns the outcome and the resulting level; the max level check belongs to the caller
func Resolve(level int, tier Tier, bonus, draw float64) (Outcome, int) {
	p := Boosted(level, tier.BaseSuccess, bonus)

	switch {
	case draw < p.Success:
		return OutcomeSuccess, level + 1
	case draw < p.Success+p.Fail:
		if level > 0 {
			level--
		}
		return OutcomeFail, level
	default:
		return OutcomeDestroy, 0
	}
}

// Item is the single enhanceable item of a session
type Item struct {
	Name  string
	Tier  Tier
	Level int
}

// NewItem creates an item at level 0
func NewItem(name string, tier Tier) *Item {
	return &Item{Name: name, Tier: tier}
}

// Probabilities returns the base triple for the current level
func (it *Item) Probabilities() Probabilities {
	return ComputeProbabilities(it.Level, it.Tier.BaseSuccess)
}

// AtMax reports whether the item reached the terminal level
func (it *Item) AtMax() bool {
	return it.Level >= constants.MaxLevel
}

// Result describes one applied attempt
type Result struct {
	Outcome       Outcome
	PreviousLevel int
	Level         int
	Bonus         float64
	Draw          float64
	Odds          Probabilities // Boosted triple the draw was resolved against
}

// Attempt resolves an attempt against the item and applies the new level
func (it *Item) Attempt(bonus, draw float64) Result {
	prev := it.Level
	odds := Boosted(prev, it.Tier.BaseSuccess, bonus)
	outcome, level := Resolve(prev, it.Tier, bonus, draw)
	it.Level = level

	return Result{
		Outcome:       outcome,
		PreviousLevel: prev,
		Level:         level,
		Bonus:         bonus,
		Draw:          draw,
		Odds:          odds,
	}
}
