package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fittrack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	KeyRedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_key_redemptions_total",
			Help: "Total number of membership key redemption attempts",
		},
		[]string{"outcome"},
	)

	KeysIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_keys_issued_total",
			Help: "Total number of membership keys issued",
		},
		[]string{"tier"},
	)

	KeysRevokedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fittrack_keys_revoked_total",
			Help: "Total number of membership keys revoked",
		},
	)

	GateDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_gate_denials_total",
			Help: "Total number of feature gate denials",
		},
		[]string{"feature"},
	)

	WorkoutsLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fittrack_workouts_logged_total",
			Help: "Total number of workouts logged",
		},
	)

	GoalsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fittrack_goals_created_total",
			Help: "Total number of goals created",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_notifications_total",
			Help: "Total number of webhook notifications",
		},
		[]string{"action", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fittrack_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)

	InsightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_insight_requests_total",
			Help: "Total number of AI mood insight requests",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRedemption(outcome string) {
	KeyRedemptionsTotal.WithLabelValues(outcome).Inc()
}

func RecordKeysIssued(tier string, count int) {
	KeysIssuedTotal.WithLabelValues(tier).Add(float64(count))
}

func RecordKeyRevoked() {
	KeysRevokedTotal.Inc()
}

func RecordGateDenial(feature string) {
	GateDenialsTotal.WithLabelValues(feature).Inc()
}

func RecordNotification(action, status string) {
	NotificationsTotal.WithLabelValues(action, status).Inc()
}

func RecordInsight(status string) {
	InsightRequestsTotal.WithLabelValues(status).Inc()
}
