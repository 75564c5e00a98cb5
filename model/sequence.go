package model

import "iter"

// Sequence is a forward-only, unbounded stream of generations.
// It only ever holds the most recently produced generation.
type Sequence struct {
	current *Generation
}

// NewSequence starts a sequence from initial. The first call to Next yields cycle initial+1.
func NewSequence(initial *Generation) *Sequence {
	return &Sequence{current: initial}
}

// Next computes, stores and returns the following generation
func (s *Sequence) Next() *Generation {
	s.current = NextGeneration(s.current)
	return s.current
}

// Current returns the last produced generation, or the initial one before the first pull
func (s *Sequence) Current() *Generation {
	return s.current
}

// All adapts the sequence for range-over-func. It shares state with Next,
// so breaking out of a loop and ranging again continues where it stopped.
func (s *Sequence) All() iter.Seq[*Generation] {
	return func(yield func(*Generation) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
