package enhance

import (
	"math"

	"github.com/lixenwraith/anvil/constants"
)

// Probabilities is the derived (success, fail, destroy) triple in percent
// The triple is not renormalized: a large bonus can push Sum above 100
type Probabilities struct {
	Success float64
	Fail    float64
	Destroy float64
}

// Sum returns the total of the three buckets
func (p Probabilities) Sum() float64 {
	return p.Success + p.Fail + p.Destroy
}

// ComputeProbabilities derives the base triple for a level and tier base success
// Success floor is applied first, destroy is independent, fail absorbs the remainder
func ComputeProbabilities(level int, baseSuccess float64) Probabilities {
	success := math.Max(constants.SuccessFloor, baseSuccess-float64(level)*constants.SuccessDropPerLevel)

	destroy := 0.0
	if level >= constants.DestroyFromLevel {
		destroy = clamp(float64(level)*constants.DestroyPerLevel, 0, constants.DestroyCap)
	}

	return Probabilities{
		Success: success,
		Fail:    math.Max(0, 100-success-destroy),
		Destroy: destroy,
	}
}

// Boosted returns the base triple with bonus added to success
// Success is left uncapped and fail is recomputed from the boosted value
func Boosted(level int, baseSuccess, bonus float64) Probabilities {
	p := ComputeProbabilities(level, baseSuccess)
	p.Success += bonus
	p.Fail = math.Max(0, 100-p.Success-p.Destroy)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
