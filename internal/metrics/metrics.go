package metrics

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crewplan"

// Outcome labels. Failures are labelled with their lowercased error code.
const (
	OutcomeOK = "ok"
)

// Observer turns service use-case events into Prometheus series on its
// own registry.
type Observer struct {
	registry *prometheus.Registry

	useCaseTotal     *prometheus.CounterVec
	useCaseDuration  *prometheus.HistogramVec
	unallocatedHours prometheus.Counter
}

var _ service.UseCaseObserver = (*Observer)(nil)

func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Observer{
		registry: reg,
		useCaseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_case_total",
			Help:      "Total number of service use-case executions.",
		}, []string{"use_case", "outcome"}),
		useCaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Latency distribution for service use cases.",
			Buckets: []float64{
				0.001, 0.002, 0.005,
				0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5,
			},
		}, []string{"use_case"}),
		unallocatedHours: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unallocated_hours_total",
			Help:      "Requested assignment hours that did not fit the date range.",
		}),
	}
}

func (o *Observer) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	o.useCaseTotal.WithLabelValues(event.Name, outcome(event)).Inc()
	o.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
	if h, ok := event.Fields["unallocated_hours"].(float64); ok && h > 0 {
		o.unallocatedHours.Add(h)
	}
}

// Gatherer exposes the registry for scraping or tests.
func (o *Observer) Gatherer() prometheus.Gatherer {
	return o.registry
}

// WriteTextfile writes every series in the node-exporter textfile format.
// The file is replaced atomically.
func (o *Observer) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, o.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

func outcome(event service.UseCaseEvent) string {
	if event.Success {
		return OutcomeOK
	}
	switch app.CodeOf(event.Err) {
	case app.ErrInvalidArgument:
		return "invalid_argument"
	case app.ErrNotFound:
		return "not_found"
	case app.ErrFailedPrecondition:
		return "failed_precondition"
	default:
		return "internal"
	}
}
