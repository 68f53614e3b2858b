// Package distribution implements the random variate generators used by the
// FAIR risk-factor samplers. Every function takes its rng.Source explicitly.
package distribution

import (
	"math"

	"fair-mcs/internal/rng"
)

// zeroSubstitute replaces an exact-zero uniform where log or a power of it is taken.
const zeroSubstitute = 1e-10

// Normal draws a standard normal variate with the Box-Muller transform.
// Zero uniforms are redrawn since ln(0) is undefined.
func Normal(src rng.Source) float64 {
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	for u2 == 0 {
		u2 = src.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// LogNormal draws exp(mu + sigma*z).
func LogNormal(mu, sigma float64, src rng.Source) float64 {
	return math.Exp(mu + sigma*Normal(src))
}

// Gamma draws from Gamma(shape, 1).
//
// shape >= 1 uses Marsaglia-Tsang. shape < 1 boosts once through shape+1
// (Ahrens-Dieter), which always lands in the first regime.
func Gamma(shape float64, src rng.Source) float64 {
	if shape < 1 {
		u := src.Float64()
		if u == 0 {
			u = zeroSubstitute
		}
		return Gamma(shape+1, src) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := Normal(src)
		t := 1 + c*x
		if t <= 0 {
			continue
		}
		v := t * t * t

		u := src.Float64()
		if u == 0 {
			u = zeroSubstitute
		}

		x2 := x * x
		if u < 1-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// Beta draws from Beta(alpha, beta) as a ratio of two gamma variates.
func Beta(alpha, beta float64, src rng.Source) float64 {
	ga := Gamma(alpha, src)
	gb := Gamma(beta, src)
	sum := ga + gb
	if sum == 0 {
		// Both gammas underflowed (tiny shapes); the mean keeps the draw in [0,1].
		return alpha / (alpha + beta)
	}
	return ga / sum
}

// Uniform draws uniformly from [min, max).
func Uniform(min, max float64, src rng.Source) float64 {
	return min + (max-min)*src.Float64()
}

// PERT draws from the PERT distribution defined by (min, mode, max).
//
// A zero-width range returns min without drawing. When the shape parameters
// are non-positive or non-finite (mode outside the range, or mode equal to the
// PERT mean) the draw falls back to Uniform(min, max).
func PERT(min, mode, max float64, src rng.Source) float64 {
	if max == min {
		return min
	}

	mu := (min + 4*mode + max) / 6
	alpha := (mu - min) * (2*mode - min - max) / ((mode - mu) * (max - min))
	if !validShape(alpha) {
		return Uniform(min, max, src)
	}

	betaParam := alpha * (max - mu) / (mu - min)
	if !validShape(betaParam) {
		return Uniform(min, max, src)
	}

	return min + (max-min)*Beta(alpha, betaParam, src)
}

func validShape(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
