package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ClaimsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsTotal,
			Help: HelpTextClaimsTotal,
		},
	)

	ResourcesAccrued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesAccrued,
			Help: HelpTextResourcesAccrued,
		},
		[]string{LabelResource},
	)

	ItemUpgradesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemUpgradesTotal,
			Help: HelpTextItemUpgradesTotal,
		},
	)

	SlotUpgradesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotUpgradesTotal,
			Help: HelpTextSlotUpgradesTotal,
		},
	)

	BlendsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBlendsTotal,
			Help: HelpTextBlendsTotal,
		},
	)

	SwapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSwapsTotal,
			Help: HelpTextSwapsTotal,
		},
		[]string{LabelResource},
	)

	StakesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStakesTotal,
			Help: HelpTextStakesTotal,
		},
		[]string{LabelKind},
	)
)
