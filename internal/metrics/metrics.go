package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
)

const namespace = "moonsters"

// Collector exports flow, step, receipt and signature metrics. It implements
// action.Observer and signature.Observer.
type Collector struct {
	flowsTotal          *prometheus.CounterVec
	stepTransitions     *prometheus.CounterVec
	receiptWaitSeconds  *prometheus.HistogramVec
	signaturesTotal     *prometheus.CounterVec
	rateLimitedRequests *prometheus.CounterVec
}

var _ action.Observer = (*Collector)(nil)

func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		flowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flows_total",
				Help:      "Finished orchestrator flows labeled by flow, status and error kind",
			},
			[]string{"flow", "status", "kind"},
		),
		stepTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "step_transitions_total",
				Help:      "Orchestrator step transitions labeled by flow and target step",
			},
			[]string{"flow", "step"},
		),
		receiptWaitSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "receipt_wait_seconds",
				Help:      "Time spent waiting for transaction receipts",
				Buckets:   []float64{1, 2, 4, 8, 15, 30, 60, 120},
			},
			[]string{"flow"},
		),
		signaturesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signatures_issued_total",
				Help:      "Action signatures issued labeled by kind",
			},
			[]string{"kind"},
		),
		rateLimitedRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests refused by a rate limiter",
			},
			[]string{"limiter"},
		),
	}
}

func (c *Collector) StepChanged(flow action.Flow, step action.Step) {
	c.stepTransitions.WithLabelValues(string(flow), step.String()).Inc()
}

func (c *Collector) FlowFinished(flow action.Flow, status action.Status, kind action.ErrorKind) {
	label := string(kind)
	if len(label) == 0 {
		label = "none"
	}

	c.flowsTotal.WithLabelValues(string(flow), string(status), label).Inc()
}

func (c *Collector) ReceiptWaited(flow action.Flow, d time.Duration) {
	c.receiptWaitSeconds.WithLabelValues(string(flow)).Observe(d.Seconds())
}

func (c *Collector) SignatureIssued(kind string) {
	c.signaturesTotal.WithLabelValues(kind).Inc()
}

func (c *Collector) RateLimited(limiter string) {
	c.rateLimitedRequests.WithLabelValues(limiter).Inc()
}
