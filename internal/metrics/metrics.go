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
	MenusGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMenusGenerated,
			Help: HelpTextMenusGenerated,
		},
	)

	MealsAssigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMealsAssigned,
			Help: HelpTextMealsAssigned,
		},
	)

	SlotsUnfilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsUnfilled,
			Help: HelpTextSlotsUnfilled,
		},
	)

	ShoppingListsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsGenerated,
			Help: HelpTextShoppingListsGenerated,
		},
	)

	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListItems,
			Help:    HelpTextShoppingListItems,
			Buckets: []float64{0, 5, 10, 20, 40, 80},
		},
	)
)
