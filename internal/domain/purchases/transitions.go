package purchases

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("purchase not found")

// Check-in outcomes, also used as the machine-readable status in API responses.
const (
	CheckInInvalid     = "invalid"
	CheckInUnpaid      = "unpaid"
	CheckInAlreadyUsed = "already_used"
	CheckInSuccess     = "success"
)

type CheckInResult struct {
	Status   string
	Purchase Purchase
}

// ApplyPaymentStatus records the provider's authoritative status for a purchase.
// Redeliveries of the same webhook event re-apply the same values.
func ApplyPaymentStatus(db *gorm.DB, id, status string, paymentID *string) (Purchase, error) {
	updates := map[string]interface{}{"payment_status": status}
	if paymentID != nil && *paymentID != "" {
		updates["provider_payment_id"] = *paymentID
	}

	res := db.Model(&Purchase{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return Purchase{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Purchase{}, ErrNotFound
	}

	var p Purchase
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return Purchase{}, err
	}
	return p, nil
}

// ClaimTicketIssuance flips ticket_issued false→true and reports whether this
// caller won the claim. Losing the claim means the ticket was already issued
// (or is being issued right now), so the caller must not send another email.
func ClaimTicketIssuance(db *gorm.DB, id string, now time.Time) (bool, error) {
	res := db.Model(&Purchase{}).
		Where("id = ? AND ticket_issued = ?", id, false).
		Updates(map[string]interface{}{"ticket_issued": true, "ticket_issued_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ReleaseTicketIssuance gives the claim back after a failed send so a webhook
// redelivery can retry the email.
func ReleaseTicketIssuance(db *gorm.DB, id string) error {
	return db.Model(&Purchase{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"ticket_issued": false, "ticket_issued_at": nil}).Error
}

// CheckIn runs the door-scan state machine. The mutating arm is a single
// conditional UPDATE guarded on checked_in, so two simultaneous scans of the
// same code can never both succeed.
func CheckIn(db *gorm.DB, id string, now time.Time) (CheckInResult, error) {
	var p Purchase
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckInResult{Status: CheckInInvalid}, nil
		}
		return CheckInResult{}, err
	}

	if p.PaymentStatus != StatusApproved {
		return CheckInResult{Status: CheckInUnpaid, Purchase: p}, nil
	}

	if p.CheckedIn {
		return CheckInResult{Status: CheckInAlreadyUsed, Purchase: p}, nil
	}

	res := db.Model(&Purchase{}).
		Where("id = ? AND checked_in = ? AND payment_status = ?", id, false, StatusApproved).
		Updates(map[string]interface{}{"checked_in": true, "checked_in_at": now})
	if res.Error != nil {
		return CheckInResult{}, res.Error
	}
	if res.RowsAffected == 0 {
		// lost the race to a concurrent scan; reload for the recorded timestamp
		if err := db.Where("id = ?", id).First(&p).Error; err != nil {
			return CheckInResult{}, err
		}
		return CheckInResult{Status: CheckInAlreadyUsed, Purchase: p}, nil
	}

	p.CheckedIn = true
	p.CheckedInAt = &now
	return CheckInResult{Status: CheckInSuccess, Purchase: p}, nil
}
