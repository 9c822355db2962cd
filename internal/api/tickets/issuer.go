package tickets

import (
	"fmt"
	"time"

	"tickets-app/internal/domain/purchases"
	"tickets-app/internal/domain/tiers"
	"tickets-app/monitoring"

	"gorm.io/gorm"
)

var mailer Mailer = smtpMailer{}

// IssueOnce sends the ticket email for an approved purchase at most once.
// The claim is an atomic flip of ticket_issued, so webhook redeliveries (and
// concurrent deliveries) cannot produce duplicate emails. A failed send
// releases the claim so the next redelivery can retry.
func IssueOnce(db *gorm.DB, p purchases.Purchase) error {
	claimed, err := purchases.ClaimTicketIssuance(db, p.ID, time.Now())
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	if err := SendTicketEmail(db, p); err != nil {
		if releaseErr := purchases.ReleaseTicketIssuance(db, p.ID); releaseErr != nil {
			fmt.Println("❌ Failed to release issuance claim for", p.ID, ":", releaseErr)
		}
		return err
	}

	monitoring.TicketIssued()
	return nil
}

// SendTicketEmail composes and sends the QR ticket for a purchase.
func SendTicketEmail(db *gorm.DB, p purchases.Purchase) error {
	code := CodeFor(p.ID)

	qr, err := qrPNGDataURI(code)
	if err != nil {
		return fmt.Errorf("failed to render QR code: %w", err)
	}

	html := ticketEmailHTML(p.FullName, tierLabel(db, p.TicketType), p.ID, qr)

	if err := mailer.Send(p.Email, "🎃 Your Halloween Night 2025 Ticket", html); err != nil {
		return fmt.Errorf("failed to send ticket email: %w", err)
	}
	return nil
}

func tierLabel(db *gorm.DB, code string) string {
	if db != nil {
		var tier tiers.TicketTier
		if err := db.Where("code = ?", code).First(&tier).Error; err == nil {
			return tier.Label
		}
	}
	return code
}

func ticketEmailHTML(fullName, tierLabel, purchaseID, qrDataURI string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"></head>
  <body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #f97316, #dc2626); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
      <h1>🎃 Halloween Night 2025 🎃</h1>
      <p>Your ticket is confirmed!</p>
    </div>
    <div style="background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px;">
      <div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0;">
        <h2>Hello, %s!</h2>
        <p><strong>Ticket type:</strong> %s</p>
        <p><strong>Transaction ID:</strong> %s</p>
      </div>
      <div style="text-align: center; margin: 30px 0; padding: 20px; background: white; border-radius: 10px;">
        <h3>Your entry QR code</h3>
        <p>Show this QR code at the door</p>
        <img src="%s" alt="Ticket QR code" style="max-width: 300px; height: auto;" />
      </div>
      <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 2px solid #e5e7eb; color: #6b7280;">
        <p>See you at the party! 👻</p>
        <p style="font-size: 12px;">This is an automated email. For questions, reach us on our social channels.</p>
      </div>
    </div>
  </body>
</html>`, fullName, tierLabel, purchaseID, qrDataURI)
}
