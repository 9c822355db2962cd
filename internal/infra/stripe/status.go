package stripe

import "strings"

// NormalizePaymentStatus maps a checkout-session webhook onto the purchase
// lifecycle. The event type wins for terminal outcomes; otherwise the
// session's payment_status decides.
func NormalizePaymentStatus(eventType, sessionPaymentStatus string) string {
	switch eventType {
	case "checkout.session.async_payment_failed":
		return "rejected"
	case "checkout.session.expired":
		return "expired"
	}

	switch strings.TrimSpace(sessionPaymentStatus) {
	case "paid", "no_payment_required":
		return "approved"
	case "unpaid":
		return "pending"
	case "":
		return "pending"
	default:
		return strings.TrimSpace(sessionPaymentStatus)
	}
}

// IsPaymentEvent reports whether a webhook event carries a payment outcome we
// track. Everything else is acked and ignored.
func IsPaymentEvent(eventType string) bool {
	switch eventType {
	case "checkout.session.completed",
		"checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed",
		"checkout.session.expired":
		return true
	}
	return false
}
