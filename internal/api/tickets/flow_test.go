package tickets

import (
	"testing"
	"time"

	"tickets-app/internal/domain/purchases"
	"tickets-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle: pending purchase → approved by webhook → ticket emailed →
// scanned once at the door → second scan refused.
func TestPurchaseLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	fake := useFakeMailer(t)

	p := purchases.Purchase{
		FullName:   "Ana Silva",
		Email:      "ana@x.com",
		TicketType: "vip",
		Price:      100,
	}
	require.NoError(t, db.Create(&p).Error)
	require.Equal(t, purchases.StatusPending, p.PaymentStatus)

	// webhook reports approval
	paymentID := "pi_42"
	approved, err := purchases.ApplyPaymentStatus(db, p.ID, purchases.StatusApproved, &paymentID)
	require.NoError(t, err)

	require.NoError(t, IssueOnce(db, approved))
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "ana@x.com", fake.sent[0].to)
	assert.Contains(t, fake.sent[0].html, "data:image/png;base64,")
	assert.Contains(t, fake.sent[0].html, p.ID)

	// a redelivered webhook approves again but sends nothing new
	_, err = purchases.ApplyPaymentStatus(db, p.ID, purchases.StatusApproved, &paymentID)
	require.NoError(t, err)
	require.NoError(t, IssueOnce(db, approved))
	assert.Len(t, fake.sent, 1)

	// the emailed code opens the door exactly once
	id := PurchaseIDFromCode(CodeFor(p.ID))
	first, err := purchases.CheckIn(db, id, time.Now())
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInSuccess, first.Status)
	assert.Equal(t, "Ana Silva", first.Purchase.FullName)

	second, err := purchases.CheckIn(db, id, time.Now())
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInAlreadyUsed, second.Status)
}
