package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
)

// ServiceMetricsCollector turns view notifications into Prometheus series.
// It is attached to the game service as one more ViewNotifier.
type ServiceMetricsCollector struct {
	ordersPlaced   *prometheus.CounterVec
	ordersResolved *prometheus.CounterVec
	orderQuality   *prometheus.HistogramVec
	scoreTotal     prometheus.Gauge
	scoreDeltas    *prometheus.CounterVec

	customerTransitions *prometheus.CounterVec
	seatOccupancy       prometheus.Gauge
	seatCapacity        prometheus.Gauge
	waitingParties      prometheus.Gauge

	modeChanges *prometheus.CounterVec
}

var _ ports.ViewNotifier = (*ServiceMetricsCollector)(nil)

// NewServiceMetricsCollector creates a new service metrics collector
func NewServiceMetricsCollector() *ServiceMetricsCollector {
	return &ServiceMetricsCollector{
		ordersPlaced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_placed_total",
				Help:      "Total orders placed by recipe",
			},
			[]string{"recipe"},
		),
		ordersResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_resolved_total",
				Help:      "Total orders resolved by recipe and result",
			},
			[]string{"recipe", "result", "timed_out"},
		),
		orderQuality: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_quality",
				Help:      "Quality distribution of served dishes",
				Buckets:   []float64{0.1, 0.3, 0.5, 0.7, 0.8, 0.9, 0.95, 1.0},
			},
			[]string{"recipe"},
		),
		scoreTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "score_total",
				Help:      "Current running score",
			},
		),
		scoreDeltas: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "score_points_total",
				Help:      "Absolute score points awarded or deducted",
			},
			[]string{"direction"},
		),
		customerTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "customer_transitions_total",
				Help:      "Customer state transitions by target state",
			},
			[]string{"state"},
		),
		seatOccupancy: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "seats_occupied",
				Help:      "Number of occupied seats",
			},
		),
		seatCapacity: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "seats_capacity",
				Help:      "Number of usable seats",
			},
		),
		waitingParties: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "waiting_parties",
				Help:      "Parties queued for a seat",
			},
		),
		modeChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mode_changes_total",
				Help:      "Game mode transitions by target mode",
			},
			[]string{"to"},
		),
	}
}

// Register registers all service metrics with the global registry
func (c *ServiceMetricsCollector) Register() error {
	return register(
		c.ordersPlaced,
		c.ordersResolved,
		c.orderQuality,
		c.scoreTotal,
		c.scoreDeltas,
		c.customerTransitions,
		c.seatOccupancy,
		c.seatCapacity,
		c.waitingParties,
		c.modeChanges,
	)
}

func (c *ServiceMetricsCollector) CustomerStateChanged(e ports.CustomerStateChanged) {
	c.customerTransitions.WithLabelValues(e.State.String()).Inc()
}

func (c *ServiceMetricsCollector) OrderPlaced(e ports.OrderPlaced) {
	c.ordersPlaced.WithLabelValues(e.Recipe).Inc()
}

func (c *ServiceMetricsCollector) OrderResolved(e ports.OrderResolved) {
	timedOut := "false"
	if e.TimedOut {
		timedOut = "true"
	}
	c.ordersResolved.WithLabelValues(e.Recipe, e.Result.String(), timedOut).Inc()
	if !e.TimedOut {
		c.orderQuality.WithLabelValues(e.Recipe).Observe(e.Quality)
	}
	c.scoreTotal.Set(float64(e.Total))
	switch {
	case e.Delta > 0:
		c.scoreDeltas.WithLabelValues("awarded").Add(float64(e.Delta))
	case e.Delta < 0:
		c.scoreDeltas.WithLabelValues("deducted").Add(float64(-e.Delta))
	}
}

func (c *ServiceMetricsCollector) SeatOccupancyChanged(e ports.SeatOccupancyChanged) {
	c.seatOccupancy.Set(float64(e.Occupancy))
	c.seatCapacity.Set(float64(e.Capacity))
	c.waitingParties.Set(float64(e.Waiting))
}

func (c *ServiceMetricsCollector) ModeChanged(e ports.ModeChanged) {
	c.modeChanges.WithLabelValues(string(e.To)).Inc()
}

func (c *ServiceMetricsCollector) SeatSelected(ports.SeatSelected) {}
