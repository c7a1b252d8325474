package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Greeting lookup results.
const (
	GreetingFound    = "found"
	GreetingFallback = "fallback"
)

// Outbound request statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	GreetingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_greetings_total",
		Help: "The total number of greetings by lookup result",
	}, []string{"result"})

	PeopleSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "greeter_people_saved_total",
		Help: "The total number of people saved through the people service",
	})

	PeopleStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "greeter_people_stored",
		Help: "The number of people in the repository at the last refresh",
	})

	TranslationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_translation_requests_total",
		Help: "The total number of translation requests by provider and status",
	}, []string{"provider", "status"})

	TranslationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "greeter_translation_duration_seconds",
		Help:    "Duration of translation requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	FetchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_fetch_requests_total",
		Help: "The total number of outbound fetches by source and status",
	}, []string{"source", "status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_http_requests_total",
		Help: "The total number of HTTP requests served by path and code",
	}, []string{"path", "code"})
)
