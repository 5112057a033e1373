package dicestats

import (
	"math"
	"testing"

	"github.com/yourusername/urengine/pkg/engine"
)

func TestExpectedMatchesWeights(t *testing.T) {
	exp := Expected(16)
	for v, w := range engine.RollWeights {
		if math.Abs(exp[v]-float64(w)) > 1e-9 {
			t.Errorf("Expected(16)[%d] = %f, want %d", v, exp[v], w)
		}
	}
}

func TestSampleFitsBinomial(t *testing.T) {
	r := Sample(engine.NewDice(99), 64000)

	total := 0
	for _, c := range r.Counts {
		total += c
	}
	if total != r.Trials {
		t.Fatalf("counts sum to %d, want %d", total, r.Trials)
	}
	if r.PValue < 1e-6 {
		t.Errorf("chi-square %.2f (p = %g) rejects binomial fit; counts %v", r.ChiSquare, r.PValue, r.Counts)
	}

	f := r.Frequency()
	for v, w := range engine.RollWeights {
		if math.Abs(f[v]-float64(w)/16) > 0.01 {
			t.Errorf("frequency of %d = %.4f, want %.4f", v, f[v], float64(w)/16)
		}
	}
}

func TestFitDetectsBias(t *testing.T) {
	// A set of dice that never totals 4 and rarely 0.
	r := Fit([NumOutcomes]int{200, 4800, 6500, 4500, 0})
	if r.Trials != 16000 {
		t.Errorf("Trials = %d, want 16000", r.Trials)
	}
	if r.ChiSquare < 100 {
		t.Errorf("chi-square = %f for biased counts, want large", r.ChiSquare)
	}
	if r.PValue > 1e-9 {
		t.Errorf("p = %g for biased counts, want ~0", r.PValue)
	}
}

func TestFitExact(t *testing.T) {
	r := Fit([NumOutcomes]int{100, 400, 600, 400, 100})
	if r.ChiSquare > 1e-9 {
		t.Errorf("chi-square = %f for exact counts, want 0", r.ChiSquare)
	}
	if math.Abs(r.PValue-1) > 1e-6 {
		t.Errorf("p = %f for exact counts, want 1", r.PValue)
	}
}
