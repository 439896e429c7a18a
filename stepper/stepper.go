// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package stepper tracks the position of a linear multi-step form.
package stepper

import (
	"errors"
	"fmt"
)

var (
	ErrNoSteps    = errors.New("step sequence is empty")
	ErrOutOfRange = errors.New("step index out of range")
)

// NavigationError reports a jump outside the step sequence.
// It is a caller contract violation, not a user-facing error.
type NavigationError struct {
	Index int
	Len   int
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrOutOfRange, e.Index, e.Len)
}

func (e *NavigationError) Unwrap() error { return ErrOutOfRange }

// State is the current index into a fixed sequence of named steps.
// The zero value is not usable; construct with New.
type State struct {
	steps []string
	index int
}

// New starts a sequence at its first step.
func New(steps ...string) (*State, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	return &State{steps: append([]string(nil), steps...)}, nil
}

// Next advances one step. At the last step it does nothing.
func (s *State) Next() {
	if s.index < len(s.steps)-1 {
		s.index++
	}
}

// Previous goes back one step. At the first step it does nothing.
func (s *State) Previous() {
	if s.index > 0 {
		s.index--
	}
}

// GoTo jumps to step k. Out-of-range k leaves the index unchanged.
func (s *State) GoTo(k int) error {
	if k < 0 || k >= len(s.steps) {
		return &NavigationError{Index: k, Len: len(s.steps)}
	}
	s.index = k
	return nil
}

func (s *State) Index() int      { return s.index }
func (s *State) Len() int        { return len(s.steps) }
func (s *State) Current() string { return s.steps[s.index] }
func (s *State) IsFirst() bool   { return s.index == 0 }
func (s *State) IsLast() bool    { return s.index == len(s.steps)-1 }

// Steps returns a copy of the step names.
func (s *State) Steps() []string {
	return append([]string(nil), s.steps...)
}
