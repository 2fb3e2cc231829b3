package main

import (
	"context"
	"errors"
	"fmt"

	"foundhex-site/pkg/models"
	"foundhex-site/pkg/signup"
)

type fieldPrompt struct {
	field   string
	message string
}

var organizationPrompts = []fieldPrompt{
	{models.FieldOrganizationName, "Organization name *"},
	{models.FieldContactName, "Contact name *"},
	{models.FieldContactEmail, "Contact email *"},
	{models.FieldPhoneNumber, "Phone number"},
	{models.FieldWebsite, "Website"},
	{models.FieldDescription, "Description"},
}

var locationPrompts = []fieldPrompt{
	{models.FieldFirstLocationName, "Location name (blank for default)"},
	{models.FieldFirstLocationAddress, "Address"},
	{models.FieldFirstLocationCity, "City"},
	{models.FieldFirstLocationState, "State"},
	{models.FieldFirstLocationZipCode, "ZIP code"},
}

const (
	choiceContinue = "Continue"
	choiceBack     = "Back"
	choiceCreate   = "Create organization"
)

// runWizard walks a fresh signup wizard through the driver until the
// organization is created or the user gives up.
func runWizard(ctx context.Context, driver PromptDriver, creator signup.OrganizationCreator) (signup.State, error) {
	w := signup.New()

	for {
		state := w.Snapshot()
		if state.SubmitSuccess {
			err := driver.Info(ctx, fmt.Sprintf("Organization created. An invitation was sent to %s.", state.FormData.ContactEmail))
			return state, err
		}
		if state.Error != "" {
			if err := driver.Info(ctx, "! "+state.Error); err != nil {
				return state, err
			}
		}
		if err := driver.Info(ctx, fmt.Sprintf("Step %d of %d: %s", state.Step, signup.LastStep, state.Step)); err != nil {
			return state, err
		}

		var err error
		switch state.Step {
		case signup.StepOrganization:
			err = organizationStep(ctx, driver, w, state.FormData)
		case signup.StepLocation:
			err = locationStep(ctx, driver, w, state.FormData)
		case signup.StepPlan:
			err = planStep(ctx, driver, w, state.FormData, creator)
		}
		if err != nil {
			return w.Snapshot(), err
		}
	}
}

func askFields(ctx context.Context, driver PromptDriver, w *signup.Wizard, data models.SignupFormData, prompts []fieldPrompt) error {
	for _, p := range prompts {
		current := ""
		if v := data.TextField(p.field); v != nil {
			current = *v
		}
		value, err := driver.Input(ctx, InputConfig{Message: p.message, Default: current})
		if err != nil {
			return err
		}
		if err := w.UpdateField(p.field, value); err != nil {
			return err
		}
	}
	return nil
}

func organizationStep(ctx context.Context, driver PromptDriver, w *signup.Wizard, data models.SignupFormData) error {
	if err := askFields(ctx, driver, w, data, organizationPrompts[:1]); err != nil {
		return err
	}

	industries := models.Industries()
	defaultIdx := 0
	for i, ind := range industries {
		if ind == data.Industry {
			defaultIdx = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: "Industry *", Options: industries, DefaultIndex: defaultIdx})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(industries) {
		return fmt.Errorf("industry choice %d out of range", idx)
	}
	if err := w.UpdateField(models.FieldIndustry, industries[idx]); err != nil {
		return err
	}

	if err := askFields(ctx, driver, w, data, organizationPrompts[1:]); err != nil {
		return err
	}

	// A missing required field keeps the wizard on this step with its message set
	if err := w.Advance(); err != nil && !errors.Is(err, signup.ErrRequiredFields) {
		return err
	}
	return nil
}

func locationStep(ctx context.Context, driver PromptDriver, w *signup.Wizard, data models.SignupFormData) error {
	if err := askFields(ctx, driver, w, data, locationPrompts); err != nil {
		return err
	}
	options := []string{choiceContinue, choiceBack}
	idx, err := driver.Select(ctx, SelectConfig{Message: "Next", Options: options})
	if err != nil {
		return err
	}
	if idx == 1 {
		return w.Retreat()
	}
	return w.Advance()
}

func planStep(ctx context.Context, driver PromptDriver, w *signup.Wizard, data models.SignupFormData, creator signup.OrganizationCreator) error {
	plans := models.Plans()
	options := make([]string, len(plans))
	defaultIdx := 0
	for i, p := range plans {
		options[i] = planLabel(p)
		if p.Name == data.SubscriptionPlan {
			defaultIdx = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: "Subscription plan", Options: options, DefaultIndex: defaultIdx})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(plans) {
		return fmt.Errorf("plan choice %d out of range", idx)
	}
	if err := w.SelectPlan(plans[idx].Name); err != nil {
		return err
	}

	idx, err = driver.Select(ctx, SelectConfig{Message: "Ready?", Options: []string{choiceCreate, choiceBack}})
	if err != nil {
		return err
	}
	if idx == 1 {
		return w.Retreat()
	}

	if err := driver.Info(ctx, "Creating..."); err != nil {
		return err
	}
	err = w.Submit(ctx, creator)
	var submitErr *signup.SubmitError
	if !errors.As(err, &submitErr) {
		return err
	}

	retry, err := driver.Confirm(ctx, ConfirmConfig{Message: submitErr.Message + " Try again?", Default: true})
	if err != nil {
		return err
	}
	if !retry {
		return submitErr
	}
	return nil
}

func planLabel(p models.PlanOffer) string {
	if p.Monthly {
		return fmt.Sprintf("%s (%s/month)", p.Name, p.Price)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Price)
}
