package engine

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
)

// Session owns the ordered collection of link states for one run and the
// single-shot cleanup guard. States are appended during linking and iterated
// read-only during cleanup; the session controller is the only writer.
type Session struct {
	restorer *Restorer
	logger   ports.Logger

	states      []*domain.LinkState
	cleanupOnce sync.Once
}

// NewSession creates a new Session.
func NewSession(restorer *Restorer, logger ports.Logger) *Session {
	return &Session{restorer: restorer, logger: logger}
}

// Track records a captured link state for restoration.
func (s *Session) Track(st *domain.LinkState) {
	s.states = append(s.states, st)
}

// States returns the tracked link states in link order.
func (s *Session) States() []*domain.LinkState {
	return s.states
}

// Cleanup restores every linked project exactly once. Signal-driven and
// child-exit-driven triggers both land here; re-entrant invocations after the
// first are ignored. One project's failure never prevents the others from
// being restored.
func (s *Session) Cleanup(ctx context.Context, cfg *domain.Config) {
	s.cleanupOnce.Do(func() {
		restorable := 0
		for _, st := range s.states {
			if !st.WasAlreadyLocal {
				restorable++
			}
		}
		if restorable == 0 {
			return
		}

		s.logger.Info(fmt.Sprintf("restoring %d project(s)...", restorable))

		for _, st := range s.states {
			if st.WasAlreadyLocal {
				continue
			}
			if err := s.restorer.Restore(ctx, cfg, st); err != nil {
				s.logger.Error(err)
				s.logger.Warn(ManualRecovery(cfg, st))
				continue
			}
			s.logger.Info(fmt.Sprintf("restored %s (%s: %s)", st.Project.Label, st.OriginalSection, st.OriginalSpecifier))
		}
	})
}
