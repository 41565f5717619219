package backend

import (
	"context"
	"sync"

	"classico-be/internal/entity"
	"classico-be/internal/pkg/logger"
	"classico-be/internal/repository/contract"
)

// defaultForms is what endpoints assume when they hit an unselected
// process: a bare login form, which decides Relational.
var defaultForms = []entity.DetectedForm{{Intent: entity.IntentLogin}}

// Selector owns the process-wide backend selection. The first successful
// connection fixes the kind for the rest of the process; later decisions
// that would pick a different kind are ignored once a connection exists.
// Passed explicitly through the container, never looked up globally.
type Selector struct {
	connector Connector
	log       logger.ILogger

	mu     sync.Mutex
	facade contract.StorageFacade
}

func NewSelector(connector Connector, log logger.ILogger) *Selector {
	return &Selector{connector: connector, log: log}
}

// Ensure returns the live facade, establishing the first connection if
// none exists yet. Initialization is at-most-once: the mutex guarantees
// two concurrent first uploads cannot both connect different kinds. After
// connecting, the user schema is always provisioned, and the message
// schema too when a contact form was observed.
func (s *Selector) Ensure(ctx context.Context, forms []entity.DetectedForm) (contract.StorageFacade, error) {
	if len(forms) == 0 {
		forms = defaultForms
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.facade == nil {
		kind := Decide(forms)
		facade, err := s.connector.Connect(ctx, kind)
		if err != nil {
			return nil, err
		}
		s.facade = facade
		s.log.Info("backend", "backend selected", map[string]interface{}{
			"kind":       string(kind),
			"descriptor": facade.Descriptor(),
		})
	}

	if err := s.facade.EnsureUserSchema(ctx); err != nil {
		return nil, err
	}
	if hasContact(forms) {
		if err := s.facade.EnsureMessageSchema(ctx); err != nil {
			return nil, err
		}
	}

	return s.facade, nil
}

// Kind reports the active kind, or "" while no connection exists yet.
func (s *Selector) Kind() entity.BackendKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.facade == nil {
		return ""
	}
	return s.facade.Kind()
}

func hasContact(forms []entity.DetectedForm) bool {
	for _, form := range forms {
		if form.Intent == entity.IntentContact {
			return true
		}
	}
	return false
}
