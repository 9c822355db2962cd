package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatus(t *testing.T) {
	cases := []struct {
		eventType     string
		paymentStatus string
		want          string
	}{
		{"checkout.session.completed", "paid", "approved"},
		{"checkout.session.completed", "no_payment_required", "approved"},
		{"checkout.session.completed", "unpaid", "pending"},
		{"checkout.session.async_payment_succeeded", "paid", "approved"},
		{"checkout.session.async_payment_failed", "unpaid", "rejected"},
		{"checkout.session.expired", "unpaid", "expired"},
		{"checkout.session.completed", "", "pending"},
		// unknown provider statuses pass through untouched
		{"checkout.session.completed", "in_review", "in_review"},
	}

	for _, tc := range cases {
		got := NormalizePaymentStatus(tc.eventType, tc.paymentStatus)
		assert.Equal(t, tc.want, got, "%s / %s", tc.eventType, tc.paymentStatus)
	}
}

func TestIsPaymentEvent(t *testing.T) {
	assert.True(t, IsPaymentEvent("checkout.session.completed"))
	assert.True(t, IsPaymentEvent("checkout.session.async_payment_succeeded"))
	assert.True(t, IsPaymentEvent("checkout.session.async_payment_failed"))
	assert.True(t, IsPaymentEvent("checkout.session.expired"))

	assert.False(t, IsPaymentEvent("customer.subscription.updated"))
	assert.False(t, IsPaymentEvent("invoice.paid"))
	assert.False(t, IsPaymentEvent(""))
}
