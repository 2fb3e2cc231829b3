package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"foundhex-site/pkg/clients/repx"
	"foundhex-site/pkg/models"
	"foundhex-site/pkg/signup"
	"foundhex-site/pkg/telemetry"
	"foundhex-site/pkg/utils"
)

var (
	ErrSessionNotFound = errors.New("signup session not found or expired")
)

// SignupService keeps one signup wizard per browser session
type SignupService interface {
	Start() (string, signup.State)
	Get(id string) (signup.State, error)
	UpdateFields(id string, fields map[string]string) (signup.State, error)
	Advance(id string) (signup.State, error)
	Retreat(id string) (signup.State, error)
	SelectPlan(id, plan string) (signup.State, error)
	Submit(ctx context.Context, id string) (signup.State, error)
	Stop()
}

type signupSession struct {
	wizard    *signup.Wizard
	expiresAt time.Time
}

type signupServiceImpl struct {
	creator signup.OrganizationCreator
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*signupSession
	stopCh   chan struct{}
	once     sync.Once
}

// NewSignupService creates a signup service. Sessions idle for longer than ttl
// are dropped.
func NewSignupService(creator signup.OrganizationCreator, ttl time.Duration) SignupService {
	s := &signupServiceImpl{
		creator:  creator,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*signupSession),
		stopCh:   make(chan struct{}),
	}
	go s.cleanup(ttl / 2)
	return s
}

func (s *signupServiceImpl) cleanup(every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *signupServiceImpl) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

// Stop ends the cleanup goroutine
func (s *signupServiceImpl) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *signupServiceImpl) Start() (string, signup.State) {
	id := uuid.New().String()
	w := signup.New()

	s.mu.Lock()
	s.sessions[id] = &signupSession{wizard: w, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	telemetry.SignupSessionsStarted.Inc()
	slog.Debug("signup session started", "session", id)
	return id, w.Snapshot()
}

// lookup returns the wizard for id and slides its expiry
func (s *signupServiceImpl) lookup(id string) (*signup.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if now.After(sess.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	sess.expiresAt = now.Add(s.ttl)
	return sess.wizard, nil
}

func (s *signupServiceImpl) Get(id string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}
	return w.Snapshot(), nil
}

// UpdateFields applies every field or none: unknown names are rejected before
// anything changes.
func (s *signupServiceImpl) UpdateFields(id string, fields map[string]string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}

	probe := models.NewSignupFormData()
	for name := range fields {
		if probe.TextField(name) == nil {
			return w.Snapshot(), signup.ErrUnknownField
		}
	}
	for name, value := range fields {
		if err := w.UpdateField(name, value); err != nil {
			return w.Snapshot(), err
		}
	}
	return w.Snapshot(), nil
}

func (s *signupServiceImpl) Advance(id string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}
	if err := w.Advance(); err != nil {
		return w.Snapshot(), err
	}
	state := w.Snapshot()
	telemetry.SignupStepTransitions.WithLabelValues("advance", state.Step.String()).Inc()
	return state, nil
}

func (s *signupServiceImpl) Retreat(id string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}
	if err := w.Retreat(); err != nil {
		return w.Snapshot(), err
	}
	state := w.Snapshot()
	telemetry.SignupStepTransitions.WithLabelValues("retreat", state.Step.String()).Inc()
	return state, nil
}

func (s *signupServiceImpl) SelectPlan(id, plan string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}
	p, ok := models.ParsePlan(plan)
	if !ok {
		return w.Snapshot(), signup.ErrInvalidPlan
	}
	if err := w.SelectPlan(p); err != nil {
		return w.Snapshot(), err
	}
	return w.Snapshot(), nil
}

// Submit creates the organization. The request outlives the caller's
// cancellation so a closed tab cannot abandon a signup halfway; the HTTP
// client's timeout still bounds it.
func (s *signupServiceImpl) Submit(ctx context.Context, id string) (signup.State, error) {
	w, err := s.lookup(id)
	if err != nil {
		return signup.State{}, err
	}

	emailHash := utils.HashEmail(w.Snapshot().FormData.ContactEmail)
	err = w.Submit(context.WithoutCancel(ctx), s.creator)
	state := w.Snapshot()

	var submitErr *signup.SubmitError
	switch {
	case err == nil:
		telemetry.SignupSubmissions.WithLabelValues("success").Inc()
		slog.Info("organization signup submitted", "session", id, "contact", emailHash, "plan", state.FormData.SubscriptionPlan)
	case errors.As(err, &submitErr):
		var apiErr *repx.APIError
		if errors.As(err, &apiErr) {
			telemetry.SignupSubmissions.WithLabelValues("rejected").Inc()
			slog.Warn("organization signup rejected", "session", id, "contact", emailHash, "status", apiErr.StatusCode, "message", apiErr.Message)
		} else {
			telemetry.SignupSubmissions.WithLabelValues("failed").Inc()
			slog.Error("organization signup failed", "session", id, "contact", emailHash, "error", submitErr.Err)
		}
	}
	return state, err
}
