package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Checkout sessions created per ticket tier",
		},
		[]string{"ticket_type"},
	)

	webhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Payment webhook deliveries by event type",
		},
		[]string{"event_type"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Ticket emails sent",
		},
	)

	checkIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkins_total",
			Help: "Door scans by outcome",
		},
		[]string{"result"},
	)
)

func PaymentCreated(ticketType string) {
	paymentsCreated.WithLabelValues(ticketType).Inc()
}

func WebhookEvent(eventType string) {
	webhookEvents.WithLabelValues(eventType).Inc()
}

func TicketIssued() {
	ticketsIssued.Inc()
}

func CheckInAttempt(result string) {
	checkIns.WithLabelValues(result).Inc()
}
