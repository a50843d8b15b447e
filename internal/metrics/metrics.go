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

// Progression Metrics
var (
	ExperienceAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
		[]string{LabelSource},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	LevelUpCapReached = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpCapReached,
			Help: HelpTextLevelUpCapReached,
		},
	)

	GoldAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldAwarded,
			Help: HelpTextGoldAwarded,
		},
	)
)

// Inventory Metrics
var (
	ItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
		[]string{LabelItem},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelItem},
	)

	CapacityRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapacityRejections,
			Help: HelpTextCapacityRejections,
		},
	)

	ItemCacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemCacheOperations,
			Help: HelpTextItemCacheOperations,
		},
		[]string{LabelResult},
	)
)

// Quest Metrics
var (
	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)

	LootDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDrops,
			Help: HelpTextLootDrops,
		},
		[]string{LabelItem},
	)

	LootSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootSkipped,
			Help: HelpTextLootSkipped,
		},
		[]string{LabelItem},
	)
)

// Account Metrics
var (
	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginsTotal,
			Help: HelpTextLoginsTotal,
		},
		[]string{LabelResult},
	)

	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRegistrationsTotal,
			Help: HelpTextRegistrationsTotal,
		},
	)
)
