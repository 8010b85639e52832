package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/validation"
)

const (
	resultPassed = "passed"
	resultFailed = "failed"

	unnamedField = "unnamed"
)

// ErrRegistration is returned when collectors cannot be registered.
var ErrRegistration = errors.New("failed to register validation metrics")

// Config sets metric naming and buckets.
type Config struct {
	Namespace       string    `env:"METRICS_NAMESPACE" envDefault:"fieldkit"`
	Subsystem       string    `env:"METRICS_SUBSYSTEM"`
	DurationBuckets []float64 `env:"METRICS_DURATION_BUCKETS" envSeparator:","`
}

// Collector records validation outcomes. It is safe for concurrent use.
type Collector struct {
	validations    *prometheus.CounterVec
	failures       *prometheus.CounterVec
	rulesEvaluated *prometheus.HistogramVec
	duration       *prometheus.HistogramVec
}

var _ validation.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers it on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewCollector(cfg Config, reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "fieldkit"
	}
	if len(cfg.DurationBuckets) == 0 {
		// evaluations are in-process string checks
		cfg.DurationBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01}
	}

	c := &Collector{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "field_validations_total",
				Help:      "Total number of field validations by result",
			},
			[]string{"field", "result"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "field_validation_failures_total",
				Help:      "Total number of failed field validations by failing rule position",
			},
			[]string{"field", "rule_index"},
		),
		rulesEvaluated: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "field_validation_rules_evaluated",
				Help:      "Number of rules evaluated per field validation",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
			},
			[]string{"field"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "field_validation_duration_seconds",
				Help:      "Duration of field validations",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"field"},
		),
	}

	cols := []prometheus.Collector{c.validations, c.failures, c.rulesEvaluated, c.duration}
	for i, col := range cols {
		if err := reg.Register(col); err != nil {
			for _, registered := range cols[:i] {
				reg.Unregister(registered)
			}
			return nil, errors.Join(ErrRegistration, err)
		}
	}

	return c, nil
}

// NewCollectorFromEnv loads Config from the environment and creates a Collector.
func NewCollectorFromEnv(reg prometheus.Registerer) (*Collector, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewCollector(cfg, reg)
}

// Observe implements validation.Observer.
func (c *Collector) Observe(o validation.Outcome) {
	field := o.Field
	if field == "" {
		field = unnamedField
	}

	if o.Passed {
		c.validations.WithLabelValues(field, resultPassed).Inc()
	} else {
		c.validations.WithLabelValues(field, resultFailed).Inc()
		c.failures.WithLabelValues(field, strconv.Itoa(o.RuleIndex)).Inc()
	}
	c.rulesEvaluated.WithLabelValues(field).Observe(float64(o.Evaluated))
	c.duration.WithLabelValues(field).Observe(o.Duration.Seconds())
}
