// Package telemetry sets up logging and holds the prometheus metrics of the site.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// SignupSessionsStarted counts wizards created
	SignupSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signup_sessions_started_total",
			Help: "Total number of organization signup wizards started.",
		},
	)

	// SignupStepTransitions counts wizard moves by direction and the step reached
	SignupStepTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_step_transitions_total",
			Help: "Wizard step changes, by direction (advance, retreat) and resulting step.",
		},
		[]string{"direction", "step"},
	)

	// SignupSubmissions counts submissions by outcome: success, rejected, failed
	SignupSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_submissions_total",
			Help: "Organization signup submissions, by outcome.",
		},
		[]string{"outcome"},
	)

	// DemoBookings counts demo requests by outcome: recorded, simulated, duplicate, failed
	DemoBookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_bookings_total",
			Help: "Demo booking requests, by outcome.",
		},
		[]string{"outcome"},
	)
)
