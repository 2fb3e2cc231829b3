package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"foundhex-site/pkg/clients/airtable"
	"foundhex-site/pkg/models"
	"foundhex-site/pkg/telemetry"
	"foundhex-site/pkg/utils"
)

// MsgMissingDemoFields is shown when the demo form lacks a required field
const MsgMissingDemoFields = "Please fill in all required fields"

var (
	ErrMissingDemoFields = errors.New("missing required demo fields")
)

// DemoBookingService handles "Book a Demo" requests
type DemoBookingService interface {
	Book(ctx context.Context, data models.DemoBookingData) (models.DemoBookingResult, error)
}

type demoBookingServiceImpl struct {
	airtableClient airtable.Client
	table          string
	delay          time.Duration
	policy         *bluemonday.Policy
}

// NewDemoBookingService creates the demo service. With a nil airtableClient
// bookings are only simulated: the call waits for delay and succeeds.
func NewDemoBookingService(airtableClient airtable.Client, table string, delay time.Duration) DemoBookingService {
	return &demoBookingServiceImpl{
		airtableClient: airtableClient,
		table:          table,
		delay:          delay,
		policy:         bluemonday.StrictPolicy(),
	}
}

func (s *demoBookingServiceImpl) Book(ctx context.Context, data models.DemoBookingData) (models.DemoBookingResult, error) {
	if missing := data.MissingRequired(); len(missing) > 0 {
		return models.DemoBookingResult{}, fmt.Errorf("%w: %s", ErrMissingDemoFields, strings.Join(missing, ", "))
	}

	data.Locations = data.NormalizedLocations()
	// Markup is stripped; the entities the policy leaves behind are decoded
	// because the sink stores plain text.
	data.Message = strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(data.Message)))
	emailHash := utils.HashEmail(data.Email)
	result := models.DemoBookingResult{Email: data.Email}

	if s.airtableClient == nil {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			telemetry.DemoBookings.WithLabelValues("failed").Inc()
			return models.DemoBookingResult{}, ctx.Err()
		}
		result.Simulated = true
		telemetry.DemoBookings.WithLabelValues("simulated").Inc()
		slog.Info("demo booking simulated", "contact", emailHash, "industry", data.Industry)
		return result, nil
	}

	exists, err := s.airtableClient.RecordExists(ctx, s.table, emailHash)
	if err != nil {
		telemetry.DemoBookings.WithLabelValues("failed").Inc()
		return models.DemoBookingResult{}, fmt.Errorf("error checking demo requests: %w", err)
	}
	if exists {
		result.Duplicate = true
		telemetry.DemoBookings.WithLabelValues("duplicate").Inc()
		slog.Info("skipping demo booking, already requested", "contact", emailHash)
		return result, nil
	}

	record := map[string]any{
		"name":             data.Name,
		"email":            data.Email,
		"phone":            data.Phone,
		"company":          data.Company,
		"industry":         data.Industry,
		"locations":        data.Locations,
		"preferred date":   data.PreferredDate,
		"preferred time":   data.PreferredTime,
		"message":          data.Message,
		airtable.HashField: emailHash,
	}
	if err := s.airtableClient.CreateRecord(ctx, s.table, record); err != nil {
		telemetry.DemoBookings.WithLabelValues("failed").Inc()
		return models.DemoBookingResult{}, fmt.Errorf("error recording demo request: %w", err)
	}

	telemetry.DemoBookings.WithLabelValues("recorded").Inc()
	slog.Info("demo booking recorded", "contact", emailHash, "industry", data.Industry)
	return result, nil
}
