package purchases

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses mirror what the provider reports for the checkout.
// Anything other than StatusApproved keeps the ticket unusable at the door.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusExpired  = "expired"
)

type Purchase struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName   string  `gorm:"not null" json:"full_name"`
	Email      string  `gorm:"not null;index" json:"email"`
	TicketType string  `gorm:"not null" json:"ticket_type"`
	Price      float64 `gorm:"not null" json:"price"`

	PaymentStatus string `gorm:"not null;default:'pending';index" json:"payment_status"`

	ProviderPreferenceID *string `gorm:"column:provider_preference_id;uniqueIndex:idx_purchases_provider_preference_id" json:"provider_preference_id,omitempty"`
	ProviderPaymentID    *string `gorm:"column:provider_payment_id" json:"provider_payment_id,omitempty"`
	ProviderCheckoutURL  *string `gorm:"column:provider_checkout_url" json:"-"`

	TicketIssued   bool       `gorm:"not null;default:false" json:"ticket_issued"`
	TicketIssuedAt *time.Time `json:"ticket_issued_at,omitempty"`

	CheckedIn   bool       `gorm:"not null;default:false;index" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// The id doubles as the payment provider's external reference, so it is
// generated here rather than by a database default.
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = StatusPending
	}
	return nil
}
