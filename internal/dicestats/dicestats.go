// Package dicestats measures the dice against the binomial(4, 1/2)
// distribution they are meant to follow.
package dicestats

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yourusername/urengine/pkg/engine"
)

// NumOutcomes is the number of distinct roll totals.
const NumOutcomes = engine.MaxRoll + 1

// Report summarizes a dice sample.
type Report struct {
	Trials    int
	Counts    [NumOutcomes]int
	Expected  [NumOutcomes]float64
	ChiSquare float64 // Pearson statistic against Expected
	PValue    float64 // P(X >= ChiSquare) with NumOutcomes-1 degrees of freedom
}

// Expected returns the expected count of each total over n rolls.
func Expected(n int) [NumOutcomes]float64 {
	dist := distuv.Binomial{N: engine.NumDice, P: 0.5}
	var exp [NumOutcomes]float64
	for v := range exp {
		exp[v] = dist.Prob(float64(v)) * float64(n)
	}
	return exp
}

// Sample throws the dice n times and tests the totals for goodness of fit.
func Sample(d *engine.Dice, n int) Report {
	var counts [NumOutcomes]int
	for i := 0; i < n; i++ {
		counts[d.Throw().Total]++
	}
	return Fit(counts)
}

// Fit tests observed counts of each total against the binomial distribution.
func Fit(counts [NumOutcomes]int) Report {
	r := Report{Counts: counts}
	for _, c := range counts {
		r.Trials += c
	}
	r.Expected = Expected(r.Trials)

	obs := make([]float64, NumOutcomes)
	for v, c := range counts {
		obs[v] = float64(c)
	}
	r.ChiSquare = stat.ChiSquare(obs, r.Expected[:])
	r.PValue = 1 - distuv.ChiSquared{K: NumOutcomes - 1}.CDF(r.ChiSquare)
	return r
}

// Frequency returns the observed share of each total.
func (r Report) Frequency() [NumOutcomes]float64 {
	var f [NumOutcomes]float64
	if r.Trials == 0 {
		return f
	}
	for v, c := range r.Counts {
		f[v] = float64(c) / float64(r.Trials)
	}
	return f
}
