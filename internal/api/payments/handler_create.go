package payments

import (
	"math"
	"net/http"
	"os"
	"regexp"

	"tickets-app/config"
	"tickets-app/database"
	"tickets-app/internal/domain/purchases"
	"tickets-app/internal/domain/tiers"
	"tickets-app/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// CreatePayment inserts a pending Purchase and opens a hosted checkout for it.
// Resubmitting the form creates a fresh Purchase; abandoned pending rows can
// never be checked in, so they are left alone.
func CreatePayment(c *gin.Context) {
	var body struct {
		FullName   string  `json:"fullName"`
		Email      string  `json:"email"`
		TicketType string  `json:"ticketType"`
		Price      float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fullName"})
		return
	}
	if !isEmailValid(body.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
		return
	}
	if body.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	// allow-list the tier code; the submitted price is captured as-is
	var tier tiers.TicketTier
	if err := database.DB.Where("code = ? AND active = ?", body.TicketType, true).First(&tier).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ticket type"})
		return
	}

	purchase := purchases.Purchase{
		FullName:      body.FullName,
		Email:         body.Email,
		TicketType:    tier.Code,
		Price:         body.Price,
		PaymentStatus: purchases.StatusPending,
	}
	if err := database.DB.Create(&purchase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save purchase"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(config.APP_URL + "/checkout-success"),
		CancelURL:         stripe.String(config.APP_URL + "/checkout-failure"),
		CustomerEmail:     stripe.String(body.Email),
		ClientReferenceID: stripe.String(purchase.ID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("brl"),
					UnitAmount: stripe.Int64(int64(math.Round(body.Price * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(tier.Label),
					},
				},
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	if err := database.DB.Model(&purchases.Purchase{}).
		Where("id = ?", purchase.ID).
		Updates(map[string]interface{}{
			"provider_preference_id": s.ID,
			"provider_checkout_url":  s.URL,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store checkout session"})
		return
	}

	monitoring.PaymentCreated(tier.Code)

	c.JSON(http.StatusOK, gin.H{
		"init_point":  s.URL,
		"purchase_id": purchase.ID,
	})
}
