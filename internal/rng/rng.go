// Package rng supplies the uniform random sources every sampler draws from.
//
// A Source is owned by exactly one simulation at a time. Sources are not safe
// for concurrent use: concurrent simulations must each be handed their own.
package rng

import (
	"math/rand"
	"time"
)

// Source returns uniform floats in [0,1). Callers must tolerate an exact 0.
type Source interface {
	Float64() float64
}

// Func adapts a plain callable to a Source.
type Func func() float64

// Float64 calls f.
func (f Func) Float64() float64 { return f() }

// NewDefault returns a clock-seeded source backed by math/rand.
func NewDefault() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a math/rand source with a fixed seed.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// LCG is a 32-bit linear congruential generator (Numerical Recipes constants).
// It is deliberately simple and portable so test fixtures stay stable.
type LCG struct {
	state uint32
}

// NewLCG creates an LCG starting at seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Float64 advances the generator and returns state/2^32.
func (l *LCG) Float64() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / 4294967296.0
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Draws counts how many values have been consumed.
type Sequence struct {
	values []float64
	pos    int
	Draws  int
}

// NewSequence creates a Sequence over values. An empty Sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	s.Draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}
