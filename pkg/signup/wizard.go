// Package signup implements the RepX organization signup wizard: three steps,
// one guarded transition out of the first step, and a single submission that
// creates the organization.
package signup

import (
	"context"
	"errors"
	"sync"

	"foundhex-site/pkg/clients/repx"
	"foundhex-site/pkg/models"
)

// Step is a position in the wizard
type Step int

const (
	StepOrganization Step = 1
	StepLocation     Step = 2
	StepPlan         Step = 3
)

// FirstStep and LastStep bound the wizard
const (
	FirstStep = StepOrganization
	LastStep  = StepPlan
)

func (s Step) String() string {
	switch s {
	case StepOrganization:
		return "organization"
	case StepLocation:
		return "location"
	case StepPlan:
		return "plan"
	}
	return "unknown"
}

// User-facing messages
const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgCreateFailed   = "Failed to create organization"
	MsgGenericFailure = "Something went wrong. Please try again."
)

var (
	ErrRequiredFields  = errors.New(MsgRequiredFields)
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidPlan     = errors.New("invalid subscription plan")
	ErrNoNextStep      = errors.New("already on the last step")
	ErrNoPreviousStep  = errors.New("already on the first step")
	ErrStepUnavailable = errors.New("action not available on this step")
	ErrSubmitInFlight  = errors.New("submission already in progress")
	ErrCompleted       = errors.New("signup already completed")
)

// SubmitError carries the message shown to the user after a failed submission
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.Err }

// OrganizationCreator performs the signup request
type OrganizationCreator interface {
	CreateOrganization(ctx context.Context, req models.OrganizationSignupRequest) error
}

// State is a point-in-time copy of a wizard
type State struct {
	Step          Step                  `json:"step"`
	IsSubmitting  bool                  `json:"isSubmitting"`
	SubmitSuccess bool                  `json:"submitSuccess"`
	Error         string                `json:"error,omitempty"`
	FormData      models.SignupFormData `json:"formData"`
}

// Wizard owns the state of one signup. It is safe for concurrent use; the
// network call made by Submit runs without holding the lock.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	submitting bool
	success    bool
	err        string
	data       models.SignupFormData
}

// New returns a wizard on the first step with empty data
func New() *Wizard {
	return &Wizard{
		step: FirstStep,
		data: models.NewSignupFormData(),
	}
}

// Snapshot returns a copy of the current state
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Step:          w.step,
		IsSubmitting:  w.submitting,
		SubmitSuccess: w.success,
		Error:         w.err,
		FormData:      w.data,
	}
}

// UpdateField sets one text field by its form name and clears the error.
func (w *Wizard) UpdateField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.success {
		return ErrCompleted
	}
	if w.submitting {
		return ErrSubmitInFlight
	}
	field := w.data.TextField(name)
	if field == nil {
		return ErrUnknownField
	}
	*field = value
	w.err = ""
	return nil
}

// Advance moves to the next step. Leaving the first step requires the
// organization and contact fields.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.success {
		return ErrCompleted
	}
	if w.submitting {
		return ErrSubmitInFlight
	}
	if w.step >= LastStep {
		return ErrNoNextStep
	}
	if w.step == StepOrganization && len(w.data.MissingRequired()) > 0 {
		w.err = MsgRequiredFields
		return ErrRequiredFields
	}
	w.step++
	w.err = ""
	return nil
}

// Retreat moves back one step and clears the error
func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.success {
		return ErrCompleted
	}
	if w.submitting {
		return ErrSubmitInFlight
	}
	if w.step <= FirstStep {
		return ErrNoPreviousStep
	}
	w.step--
	w.err = ""
	return nil
}

// SelectPlan replaces the selected plan. Only offered on the plan step.
func (w *Wizard) SelectPlan(plan models.SubscriptionPlan) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.success {
		return ErrCompleted
	}
	if w.submitting {
		return ErrSubmitInFlight
	}
	if w.step != StepPlan {
		return ErrStepUnavailable
	}
	if !plan.Valid() {
		return ErrInvalidPlan
	}
	w.data.SubscriptionPlan = plan
	return nil
}

// Submit sends the collected data to creator. A failed submission leaves the
// wizard on the plan step with the error text set and returns a *SubmitError;
// the caller may submit again.
func (w *Wizard) Submit(ctx context.Context, creator OrganizationCreator) error {
	req, err := w.beginSubmit()
	if err != nil {
		return err
	}

	var (
		submitErr *SubmitError
		created   bool
	)
	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.submitting = false
		switch {
		case created:
			w.success = true
		case submitErr != nil:
			w.err = submitErr.Message
		}
	}()

	if err := creator.CreateOrganization(ctx, req); err != nil {
		submitErr = &SubmitError{Message: failureMessage(err), Err: err}
		return submitErr
	}
	created = true
	return nil
}

func (w *Wizard) beginSubmit() (models.OrganizationSignupRequest, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.success:
		return models.OrganizationSignupRequest{}, ErrCompleted
	case w.step != StepPlan:
		return models.OrganizationSignupRequest{}, ErrStepUnavailable
	case w.submitting:
		return models.OrganizationSignupRequest{}, ErrSubmitInFlight
	}
	w.submitting = true
	w.err = ""
	return models.NewOrganizationSignupRequest(w.data), nil
}

func failureMessage(err error) string {
	var apiErr *repx.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgCreateFailed
	}
	return MsgGenericFailure
}
