package tiers

import (
	"encoding/json"
	"time"
)

// TicketTier is the sales catalog shown on the landing page. Purchases capture
// the price at creation time; changing a tier never rewrites sold tickets.
type TicketTier struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Code  string  `gorm:"not null;uniqueIndex:idx_ticket_tiers_code" json:"code"` // "vip" | "normal"
	Label string  `gorm:"not null" json:"label"`
	Price float64 `gorm:"not null" json:"price"`

	Perks     json.RawMessage `gorm:"type:jsonb;not null;default:'[]'" json:"perks"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	SortIndex int             `gorm:"not null;default:0" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
