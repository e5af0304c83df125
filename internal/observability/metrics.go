package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationLatency records entity store operation latency by
	// operation and collection. With simulated latency enabled this is
	// dominated by the configured delay.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pulse_store_operation_latency_seconds",
		Help:    "Entity store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "collection"})

	// EngagementEventsTotal counts like toggles and comment-counter bumps.
	EngagementEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_engagement_events_total",
		Help: "Total engagement events by kind",
	}, []string{"kind"})

	// FollowMutationsTotal counts follow and unfollow operations.
	FollowMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_follow_mutations_total",
		Help: "Total follow edge mutations by kind",
	}, []string{"kind"})

	// NotificationsCreatedTotal counts notifications fanned out by type.
	NotificationsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_notifications_created_total",
		Help: "Total notifications created by type",
	}, []string{"type"})
)

// ObserveStoreOperation records the latency of a store operation.
func ObserveStoreOperation(operation, collection string, start time.Time) {
	StoreOperationLatency.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
}

// CountEngagementEvent increments the engagement counter for the given kind.
func CountEngagementEvent(kind string) {
	EngagementEventsTotal.WithLabelValues(kind).Inc()
}

// CountFollowMutation increments the follow mutation counter for the given kind.
func CountFollowMutation(kind string) {
	FollowMutationsTotal.WithLabelValues(kind).Inc()
}

// CountNotificationCreated increments the notification counter for the given type.
func CountNotificationCreated(notificationType string) {
	NotificationsCreatedTotal.WithLabelValues(notificationType).Inc()
}
