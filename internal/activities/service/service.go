package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergington/internal/activities/models"
	"mergington/internal/activities/tracer"
	"mergington/internal/platform/metrics"
	"mergington/internal/sentinel"
	dErrors "mergington/pkg/domain-errors"
)

// Store defines the persistence interface for the activity registry.
// Error Contract:
//   - AddParticipant returns sentinel.ErrNotFound for unknown activities and
//     sentinel.ErrAlreadyUsed when the participant is enrolled anywhere
//   - RemoveParticipant returns sentinel.ErrNotFound for unknown activities and
//     sentinel.ErrInvalidState when the participant is not on that roster
type Store interface {
	Snapshot(ctx context.Context) []*models.Activity
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

type Option func(*Service)

// Service applies the enrollment rules on top of the registry store and
// translates store sentinel errors into domain errors exactly once.
type Service struct {
	store   Store
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	logger  *slog.Logger
}

func New(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		tracer: tracer.NewNoop(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer for the service.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// List returns every registered activity in registry insertion order.
func (s *Service) List(ctx context.Context) []*models.Activity {
	ctx, span := s.tracer.Start(ctx, "activities.list")
	defer span.End(nil)
	return s.store.Snapshot(ctx)
}

// Signup enrolls email in the named activity. Preconditions, in order:
// the activity must exist, and the email must not be enrolled in any
// activity (which also rules out re-signing up for the same one).
//
// MaxParticipants is deliberately not checked here; the roster may grow
// past it. Known gap inherited from the source system, kept until product
// decides otherwise.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "activities.signup",
		tracer.String("activity", activityName),
	)
	var err error
	defer func() { span.End(err) }()

	if activityName == "" || email == "" {
		err = dErrors.New(dErrors.CodeBadRequest, "activity name and email are required")
		s.reject("signup", "bad_request")
		return "", err
	}

	switch err = s.store.AddParticipant(ctx, activityName, email); {
	case errors.Is(err, sentinel.ErrNotFound):
		s.reject("signup", "activity_not_found")
		err = dErrors.New(dErrors.CodeNotFound, "Activity not found")
		return "", err
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		s.reject("signup", "already_signed_up")
		err = dErrors.New(dErrors.CodeInvalidState, fmt.Sprintf("%s is already signed up for an activity", email))
		return "", err
	case err != nil:
		err = dErrors.Wrap(err, dErrors.CodeInternal, "signup failed")
		return "", err
	}

	if s.metrics != nil {
		s.metrics.IncrementSignups()
	}
	s.logger.InfoContext(ctx, "participant signed up",
		"activity", activityName,
		"participant", email,
	)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the named activity. Preconditions, in
// order: the activity must exist, and the email must be on that specific
// activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "activities.unregister",
		tracer.String("activity", activityName),
	)
	var err error
	defer func() { span.End(err) }()

	if activityName == "" || email == "" {
		err = dErrors.New(dErrors.CodeBadRequest, "activity name and email are required")
		s.reject("unregister", "bad_request")
		return "", err
	}

	switch err = s.store.RemoveParticipant(ctx, activityName, email); {
	case errors.Is(err, sentinel.ErrNotFound):
		s.reject("unregister", "activity_not_found")
		err = dErrors.New(dErrors.CodeNotFound, "Activity not found")
		return "", err
	case errors.Is(err, sentinel.ErrInvalidState):
		s.reject("unregister", "not_registered")
		err = dErrors.New(dErrors.CodeInvalidState, fmt.Sprintf("%s is not registered for %s", email, activityName))
		return "", err
	case err != nil:
		err = dErrors.Wrap(err, dErrors.CodeInternal, "unregister failed")
		return "", err
	}

	if s.metrics != nil {
		s.metrics.IncrementUnregistrations()
	}
	s.logger.InfoContext(ctx, "participant unregistered",
		"activity", activityName,
		"participant", email,
	)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func (s *Service) reject(operation, reason string) {
	if s.metrics != nil {
		s.metrics.IncrementRejected(operation, reason)
	}
}
