package repx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"foundhex-site/pkg/models"
)

// Client defines the interface for interacting with the RepX signup API
type Client interface {
	CreateOrganization(ctx context.Context, req models.OrganizationSignupRequest) error
}

// APIError is returned when the API answers with a non-2xx status
type APIError struct {
	StatusCode int
	// Message is the API's "message" field, empty when the body had none
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("error from RepX API (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("error from RepX API (%d): %s", e.StatusCode, e.Body)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new RepX API client. baseURL already includes the API
// prefix, e.g. http://localhost:5110/api.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *clientImpl) CreateOrganization(ctx context.Context, signup models.OrganizationSignupRequest) error {
	url := c.baseURL + "/signup/organization"

	jsonPayload, err := json.Marshal(signup)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating organization: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The message is optional; a body that is not JSON leaves it empty.
		var response struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &response)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    response.Message,
			Body:       string(body),
		}
	}

	slog.Info("created organization", "organization", signup.OrganizationName, "plan", signup.SubscriptionPlan, "status", resp.StatusCode)
	return nil
}
