package purchases_test

import (
	"sync"
	"testing"
	"time"

	"tickets-app/internal/domain/purchases"
	"tickets-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPurchase(t *testing.T, db *gorm.DB, status string) purchases.Purchase {
	t.Helper()
	p := purchases.Purchase{
		FullName:      "Ana Silva",
		Email:         "ana@x.com",
		TicketType:    "vip",
		Price:         100,
		PaymentStatus: status,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestBeforeCreateGeneratesID(t *testing.T) {
	db := testutil.NewTestDB(t)

	p := createPurchase(t, db, "")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, purchases.StatusPending, p.PaymentStatus)
	assert.False(t, p.CheckedIn)
	assert.False(t, p.TicketIssued)
}

func TestApplyPaymentStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusPending)

	paymentID := "pi_123"
	updated, err := purchases.ApplyPaymentStatus(db, p.ID, purchases.StatusApproved, &paymentID)
	require.NoError(t, err)
	assert.Equal(t, purchases.StatusApproved, updated.PaymentStatus)
	require.NotNil(t, updated.ProviderPaymentID)
	assert.Equal(t, "pi_123", *updated.ProviderPaymentID)

	// redelivery re-applies the same values
	again, err := purchases.ApplyPaymentStatus(db, p.ID, purchases.StatusApproved, &paymentID)
	require.NoError(t, err)
	assert.Equal(t, purchases.StatusApproved, again.PaymentStatus)
}

func TestApplyPaymentStatusUnknownID(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := purchases.ApplyPaymentStatus(db, "does-not-exist", purchases.StatusApproved, nil)
	assert.ErrorIs(t, err, purchases.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&purchases.Purchase{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckInUnknownID(t *testing.T) {
	db := testutil.NewTestDB(t)
	createPurchase(t, db, purchases.StatusApproved)

	res, err := purchases.CheckIn(db, "does-not-exist", time.Now())
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInInvalid, res.Status)

	var checkedIn int64
	require.NoError(t, db.Model(&purchases.Purchase{}).Where("checked_in = ?", true).Count(&checkedIn).Error)
	assert.Zero(t, checkedIn)
}

func TestCheckInUnpaid(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusPending)

	for i := 0; i < 3; i++ {
		res, err := purchases.CheckIn(db, p.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, purchases.CheckInUnpaid, res.Status)
	}

	var fresh purchases.Purchase
	require.NoError(t, db.First(&fresh, "id = ?", p.ID).Error)
	assert.False(t, fresh.CheckedIn)
	assert.Nil(t, fresh.CheckedInAt)
}

func TestCheckInRejectedStaysClosed(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusRejected)

	res, err := purchases.CheckIn(db, p.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInUnpaid, res.Status)
}

func TestCheckInOnceThenAlreadyUsed(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusApproved)

	first, err := purchases.CheckIn(db, p.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInSuccess, first.Status)
	assert.Equal(t, "Ana Silva", first.Purchase.FullName)
	require.NotNil(t, first.Purchase.CheckedInAt)
	firstAt := *first.Purchase.CheckedInAt

	second, err := purchases.CheckIn(db, p.ID, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, purchases.CheckInAlreadyUsed, second.Status)
	require.NotNil(t, second.Purchase.CheckedInAt)
	assert.WithinDuration(t, firstAt, *second.Purchase.CheckedInAt, time.Second)
}

func TestCheckInConcurrent(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusApproved)

	const attempts = 20
	results := make(chan string, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := purchases.CheckIn(db, p.ID, time.Now())
			if err != nil {
				results <- "error: " + err.Error()
				return
			}
			results <- res.Status
		}()
	}
	wg.Wait()
	close(results)

	successes, used := 0, 0
	for status := range results {
		switch status {
		case purchases.CheckInSuccess:
			successes++
		case purchases.CheckInAlreadyUsed:
			used++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, used)
}

func TestClaimTicketIssuanceOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusApproved)

	claimed, err := purchases.ClaimTicketIssuance(db, p.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, claimed)

	again, err := purchases.ClaimTicketIssuance(db, p.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, again)
}

func TestReleaseTicketIssuance(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := createPurchase(t, db, purchases.StatusApproved)

	claimed, err := purchases.ClaimTicketIssuance(db, p.ID, time.Now())
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, purchases.ReleaseTicketIssuance(db, p.ID))

	reclaimed, err := purchases.ClaimTicketIssuance(db, p.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, reclaimed)
}
