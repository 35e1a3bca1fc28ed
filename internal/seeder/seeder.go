package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"mergington/internal/activities/models"
)

// Store defines methods for seeding activities
type Store interface {
	Put(ctx context.Context, a *models.Activity) error
}

// Seeder populates the activity registry with the school's fixed offerings
type Seeder struct {
	store  Store
	logger *slog.Logger
}

// New creates a new seeder
func New(store Store, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger,
	}
}

// Seed registers every default activity with its initial roster
func (s *Seeder) Seed(ctx context.Context) error {
	activities := DefaultActivities()
	for _, a := range activities {
		if err := s.store.Put(ctx, a); err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", a.Name, err)
		}
	}

	s.logger.Info("activity registry seeded",
		"activities", len(activities),
	)
	return nil
}

// DefaultActivities returns the school's activity catalog with initial
// rosters. Exported so tests can run against the same seeded state the
// server starts with.
func DefaultActivities() []*models.Activity {
	return []*models.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Team practices and inter-school basketball matches",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Track and Field",
			Description:     "Running, jumping, and throwing events training",
			Schedule:        "Tuesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore drawing, painting, and mixed-media projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "charlotte@mergington.edu"},
		},
		{
			Name:            "School Band",
			Description:     "Practice instruments and perform at school events",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu", "amelia@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop critical thinking and public speaking through debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Advanced problem-solving practice for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"james@mergington.edu", "evelyn@mergington.edu"},
		},
	}
}
