package store

import (
	"context"
	"fmt"
	"sync"

	"mergington/internal/activities/models"
	"mergington/internal/sentinel"
)

// ErrNotFound is returned when an activity is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory is the activity registry. It holds the only mutable state in the
// service: a name-keyed map of activities plus the insertion order of their
// names, so listings come back in the order the registry was seeded.
//
// Every check-then-mutate sequence runs under one lock, so the roster
// invariants hold even with parallel request handlers.
type InMemory struct {
	mu     sync.RWMutex
	byName map[string]*models.Activity
	order  []string
}

// NewInMemory creates an empty in-memory activity registry.
func NewInMemory() *InMemory {
	return &InMemory{
		byName: make(map[string]*models.Activity),
	}
}

// Put registers a new activity. Activity names are unique (case- and
// space-sensitive); a second Put with the same name fails.
func (s *InMemory) Put(_ context.Context, a *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[a.Name]; exists {
		return fmt.Errorf("activity name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	s.byName[a.Name] = a.Clone()
	s.order = append(s.order, a.Name)
	return nil
}

// Snapshot returns copies of all activities in insertion order.
func (s *InMemory) Snapshot(_ context.Context) []*models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name].Clone())
	}
	return out
}

// FindByName retrieves a copy of one activity by its exact name.
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.byName[name]; ok {
		return a.Clone(), nil
	}
	return nil, ErrNotFound
}

// AddParticipant appends email to the named activity's roster.
// It fails with sentinel.ErrNotFound when the activity is unknown, and with
// sentinel.ErrAlreadyUsed when the email is already on ANY activity's roster.
// The whole-registry scan enforces the one-activity-per-student rule and also
// covers re-signup for the same activity.
func (s *InMemory) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("activity %q: %w", name, sentinel.ErrNotFound)
	}
	for _, activityName := range s.order {
		if s.byName[activityName].HasParticipant(email) {
			return fmt.Errorf("participant enrolled in %q: %w", activityName, sentinel.ErrAlreadyUsed)
		}
	}
	target.Participants = append(target.Participants, email)
	return nil
}

// RemoveParticipant removes email from the named activity's roster, keeping
// the relative order of the remaining participants.
// It fails with sentinel.ErrNotFound when the activity is unknown, and with
// sentinel.ErrInvalidState when the email is not on that activity's roster.
func (s *InMemory) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("activity %q: %w", name, sentinel.ErrNotFound)
	}
	for i, p := range target.Participants {
		if p == email {
			target.Participants = append(target.Participants[:i], target.Participants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("participant not on roster of %q: %w", name, sentinel.ErrInvalidState)
}

// Count returns the number of registered activities.
func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}
