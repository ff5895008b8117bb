package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Orders successfully created, labeled by country
	OrdersCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_orders_created_total",
		Help: "Total number of orders created",
	}, []string{"country"})

	// Distribution of order totals at creation time
	OrderTotalAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodcourt_order_total_amount",
		Help:    "Order total amounts at creation",
		Buckets: prometheus.ExponentialBuckets(10, 2.5, 8),
	})

	// Successful logins
	Logins = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_logins_total",
		Help: "Total number of successful logins",
	})
)

func Init() {
	prometheus.MustRegister(
		OrdersCreated,
		OrderTotalAmount,
		Logins,
	)
}
