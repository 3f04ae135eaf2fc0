package screening

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

var (
	// ErrNoChild is returned when no child id was given and none is active.
	ErrNoChild = errors.New("screening: no child selected")
	// ErrCreationPending is returned when a creation request is already in flight.
	ErrCreationPending = errors.New("screening: creation already in progress")
	// errUnresolved is returned when every strategy declined.
	errUnresolved = errors.New("screening: no screening could be resolved")
)

// Backend is the part of the REST API the questionnaire talks to.
type Backend interface {
	domain.ScreeningAPI
	Questions(ctx context.Context, ageIntervalID int64) (domain.QuestionSet, error)
}

// Params are the optional entry parameters of a questionnaire. Zero means
// absent.
type Params struct {
	ChildID       int64
	ScreeningID   int64
	AgeIntervalID int64
}

// Origin says which strategy produced a Session.
type Origin string

const (
	OriginExplicit   Origin = "explicit"
	OriginInProgress Origin = "in_progress"
	OriginCreated    Origin = "created"
)

// Session identifies the screening being answered.
type Session struct {
	ScreeningID   int64
	AgeIntervalID int64
	ChildID       int64
	Origin        Origin
}

// Strategy tries to produce a Session. ok=false with a nil error means the
// strategy does not apply and the next one should run.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, p Params) (s Session, ok bool, err error)
}

// Resolver runs strategies in order and stops at the first that applies.
type Resolver struct {
	strategies []Strategy
	active     domain.ActiveChild
	log        *logging.Logger
}

// NewResolver returns the explicit → in-progress → create chain. active may
// be nil, in which case a child id must always be passed explicitly.
func NewResolver(backend Backend, active domain.ActiveChild, log *logging.Logger) *Resolver {
	return NewResolverWith(active, log,
		ExplicitStrategy{Backend: backend},
		InProgressStrategy{Backend: backend},
		NewCreateStrategy(backend),
	)
}

// NewResolverWith returns a resolver over a custom strategy list.
func NewResolverWith(active domain.ActiveChild, log *logging.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies, active: active, log: log}
}

// ChildID returns p.ChildID, falling back to the active child.
func (r *Resolver) ChildID(p Params) (int64, error) {
	if p.ChildID > 0 {
		return p.ChildID, nil
	}
	if r.active != nil {
		id, ok, err := r.active.ActiveChildID()
		if err != nil {
			return 0, fmt.Errorf("screening: read active child: %w", err)
		}
		if ok && id > 0 {
			return id, nil
		}
	}
	return 0, ErrNoChild
}

// Resolve returns the session to answer.
func (r *Resolver) Resolve(ctx context.Context, p Params) (Session, error) {
	childID, err := r.ChildID(p)
	if err != nil {
		return Session{}, err
	}
	p.ChildID = childID

	for _, st := range r.strategies {
		s, ok, err := st.Resolve(ctx, p)
		if err != nil {
			r.log.Error("resolve_failed", map[string]any{"strategy": st.Name(), "child_id": childID}, err)
			return Session{}, fmt.Errorf("screening: %s: %w", st.Name(), err)
		}
		if ok {
			s.ChildID = childID
			r.log.Info("resolved", map[string]any{
				"strategy":        st.Name(),
				"child_id":        childID,
				"screening_id":    s.ScreeningID,
				"age_interval_id": s.AgeIntervalID,
			})
			return s, nil
		}
	}
	return Session{}, errUnresolved
}

// ExplicitStrategy adopts a screening id passed by the caller. When no age
// interval was passed with it the screening is fetched once to learn it.
type ExplicitStrategy struct {
	Backend Backend
}

func (ExplicitStrategy) Name() string { return "explicit" }

func (e ExplicitStrategy) Resolve(ctx context.Context, p Params) (Session, bool, error) {
	if p.ScreeningID <= 0 {
		return Session{}, false, nil
	}
	s := Session{ScreeningID: p.ScreeningID, AgeIntervalID: p.AgeIntervalID, Origin: OriginExplicit}
	if s.AgeIntervalID > 0 {
		return s, true, nil
	}
	sc, err := e.Backend.GetScreening(ctx, p.ChildID, p.ScreeningID)
	if err != nil {
		return Session{}, false, err
	}
	s.AgeIntervalID = sc.AgeInterval.ID
	return s, true, nil
}

// InProgressStrategy adopts the child's in-progress screening, if any.
type InProgressStrategy struct {
	Backend Backend
}

func (InProgressStrategy) Name() string { return "in_progress" }

func (s InProgressStrategy) Resolve(ctx context.Context, p Params) (Session, bool, error) {
	sc, err := s.Backend.InProgressScreening(ctx, p.ChildID)
	if err != nil {
		return Session{}, false, err
	}
	if sc == nil {
		return Session{}, false, nil
	}
	return Session{ScreeningID: sc.ID, AgeIntervalID: sc.AgeInterval.ID, Origin: OriginInProgress}, true, nil
}

// CreateStrategy creates a new screening. It issues at most one successful
// creation for its lifetime: once a screening has been created later calls
// return it again, and a call made while one is pending fails with
// ErrCreationPending. A failed creation may be retried.
type CreateStrategy struct {
	backend Backend

	mu      sync.Mutex
	pending bool
	created *Session
}

// NewCreateStrategy returns a creation strategy for backend.
func NewCreateStrategy(backend Backend) *CreateStrategy {
	return &CreateStrategy{backend: backend}
}

func (*CreateStrategy) Name() string { return "create" }

func (c *CreateStrategy) Resolve(ctx context.Context, p Params) (Session, bool, error) {
	if p.ChildID <= 0 {
		return Session{}, false, nil
	}
	c.mu.Lock()
	if c.created != nil {
		s := *c.created
		c.mu.Unlock()
		return s, true, nil
	}
	if c.pending {
		c.mu.Unlock()
		return Session{}, false, ErrCreationPending
	}
	c.pending = true
	c.mu.Unlock()

	sc, err := c.backend.CreateScreening(ctx, p.ChildID, domain.CreateScreeningRequest{})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if err != nil {
		return Session{}, false, err
	}
	s := Session{ScreeningID: sc.ID, AgeIntervalID: sc.AgeInterval.ID, Origin: OriginCreated}
	c.created = &s
	return s, true, nil
}
