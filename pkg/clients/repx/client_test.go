package repx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundhex-site/pkg/models"
)

func acmeRequest() models.OrganizationSignupRequest {
	return models.NewOrganizationSignupRequest(models.SignupFormData{
		OrganizationName: "Acme Diner",
		Industry:         "Restaurant / Food Service",
		ContactEmail:     "a@acme.com",
		ContactName:      "A Owner",
		SubscriptionPlan: models.PlanFree,
	})
}

func TestCreateOrganization_PostsEveryKey(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotType   string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", srv.Client())
	require.NoError(t, c.CreateOrganization(context.Background(), acmeRequest()))

	assert.Equal(t, "/api/signup/organization", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)

	want := map[string]any{
		"organizationName":     "Acme Diner",
		"industry":             "Restaurant / Food Service",
		"description":          "",
		"website":              "",
		"phoneNumber":          "",
		"contactEmail":         "a@acme.com",
		"contactName":          "A Owner",
		"subscriptionPlan":     "Free",
		"firstLocationName":    "",
		"firstLocationAddress": "",
		"firstLocationCity":    "",
		"firstLocationState":   "",
		"firstLocationZipCode": "",
		"firstLocationCountry": "USA",
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateOrganization_SuccessIgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).CreateOrganization(context.Background(), acmeRequest())
	assert.NoError(t, err)
}

func TestCreateOrganization_ErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Email already in use"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).CreateOrganization(context.Background(), acmeRequest())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Email already in use", apiErr.Message)
}

func TestCreateOrganization_ErrorWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).CreateOrganization(context.Background(), acmeRequest())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "upstream exploded")
}

func TestCreateOrganization_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, nil).CreateOrganization(context.Background(), acmeRequest())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCreateOrganization_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(srv.URL, srv.Client()).CreateOrganization(ctx, acmeRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
