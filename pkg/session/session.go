// Package session holds the application state owned by the presentation
// layer: pantry, cart, pending suggestion, chat transcript and the simulated
// reference date. Engines never keep state of their own; they receive
// snapshots from here and hand back results to be stored.
package session

import (
	"sync"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
)

type State struct {
	mu sync.Mutex

	now        func() time.Time
	daysOffset int

	Pantry     []entities.PantryEntry
	Cart       []domain.CartLine
	Pending    *domain.PendingSuggestion
	Transcript []domain.ChatMessage
}

func NewState(pantry []entities.PantryEntry) *State {
	return NewStateWithClock(pantry, time.Now)
}

func NewStateWithClock(pantry []entities.PantryEntry, now func() time.Time) *State {
	return &State{
		now:    now,
		Pantry: pantry,
	}
}

// Lock serialises user actions; every action runs to completion before the
// next one touches the state.
func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// ReferenceDate is the wall clock shifted by the simulation offset. Read it
// once per evaluation pass. Callers must hold the lock.
func (s *State) ReferenceDate() time.Time {
	return s.now().AddDate(0, 0, s.daysOffset)
}

// Now is the unshifted wall clock.
func (s *State) Now() time.Time {
	return s.now()
}

func (s *State) DaysOffset() int {
	return s.daysOffset
}

func (s *State) SetDaysOffset(days int) {
	s.daysOffset = days
}

func (s *State) ClearCart() {
	s.Cart = nil
	s.Pending = nil
}
