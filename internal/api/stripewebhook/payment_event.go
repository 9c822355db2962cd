package stripewebhooks

import (
	"errors"
	"fmt"

	"tickets-app/database"
	"tickets-app/internal/api/tickets"
	"tickets-app/internal/domain/purchases"
	stripeinfra "tickets-app/internal/infra/stripe"
	"tickets-app/monitoring"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// handlePaymentEvent dereferences the event to the provider's current record,
// applies the resulting status to the referenced Purchase and, on approval,
// issues the ticket exactly once.
func handlePaymentEvent(eventType string, session *stripe.CheckoutSession) error {
	full, err := checkoutsession.Get(session.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch checkout session %s: %w", session.ID, err)
	}

	ref := full.ClientReferenceID
	if ref == "" {
		// nothing of ours to update; ack so the provider stops retrying
		fmt.Println("⚠️ webhook session has no client reference, ignoring:", full.ID)
		return nil
	}

	status := stripeinfra.NormalizePaymentStatus(eventType, string(full.PaymentStatus))

	var paymentID *string
	if full.PaymentIntent != nil && full.PaymentIntent.ID != "" {
		paymentID = &full.PaymentIntent.ID
	}

	purchase, err := purchases.ApplyPaymentStatus(database.DB, ref, status, paymentID)
	if errors.Is(err, purchases.ErrNotFound) {
		fmt.Println("⚠️ webhook references unknown purchase:", ref)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", ref, err)
	}

	monitoring.WebhookEvent(eventType)

	if status == purchases.StatusApproved {
		// The approved status stands even if the email never goes out;
		// issuance failures are retried on the next redelivery.
		if err := tickets.IssueOnce(database.DB, purchase); err != nil {
			fmt.Println("❌ Ticket issuance failed for", purchase.ID, ":", err)
		}
	}

	return nil
}
