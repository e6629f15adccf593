package saga

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CompensationFn undoes a previously applied side effect.
type CompensationFn func(ctx context.Context) error

// Saga runs a single unit of work and rolls back recorded side effects when
// it fails. It is ephemeral: one instance per use-case invocation, nothing is
// persisted, and a crash mid-run leaves collaborators as they were.
type Saga struct {
	compensations []CompensationFn
	logger        *logrus.Logger
}

func New(logger *logrus.Logger) *Saga {
	return &Saga{logger: logger}
}

// AddCompensation registers an undo action. Compensations form a LIFO stack:
// the one added last runs first during rollback.
func (s *Saga) AddCompensation(fn CompensationFn) {
	s.compensations = append([]CompensationFn{fn}, s.compensations...)
}

// Run executes fn. On success no compensation runs. On failure every recorded
// compensation runs in reverse registration order, then the original error is
// returned unchanged. Errors raised by compensations themselves are logged
// and swallowed so the remaining ones still execute.
func (s *Saga) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	s.compensate(ctx)
	return err
}

func (s *Saga) compensate(ctx context.Context) {
	if len(s.compensations) == 0 {
		return
	}
	if s.logger != nil {
		s.logger.WithField("compensation_count", len(s.compensations)).Info("starting compensation")
	}
	for _, fn := range s.compensations {
		if cErr := fn(ctx); cErr != nil {
			if s.logger != nil {
				s.logger.WithError(cErr).Error("compensation step failed")
			}
			continue
		}
		if s.logger != nil {
			s.logger.Debug("compensation step completed")
		}
	}
	if s.logger != nil {
		s.logger.Info("compensation finished")
	}
}
