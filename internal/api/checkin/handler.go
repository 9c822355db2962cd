package checkin

import (
	"net/http"
	"time"

	"tickets-app/database"
	"tickets-app/internal/api/tickets"
	"tickets-app/internal/domain/purchases"
	"tickets-app/monitoring"

	"github.com/gin-gonic/gin"
)

// CheckIn validates a scanned code and marks attendance at most once.
func CheckIn(c *gin.Context) {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code"})
		return
	}

	id := tickets.PurchaseIDFromCode(body.Code)

	result, err := purchases.CheckIn(database.DB, id, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Check-in failed"})
		return
	}

	monitoring.CheckInAttempt(result.Status)

	switch result.Status {
	case purchases.CheckInInvalid:
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"status":  result.Status,
			"message": "Invalid ticket",
		})

	case purchases.CheckInUnpaid:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"status":  result.Status,
			"message": "Payment not approved",
		})

	case purchases.CheckInAlreadyUsed:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"status":  result.Status,
			"message": "Ticket already used",
			"purchase": gin.H{
				"fullName":    result.Purchase.FullName,
				"ticketType":  result.Purchase.TicketType,
				"checkedInAt": result.Purchase.CheckedInAt,
			},
		})

	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  result.Status,
			"message": "Check-in successful",
			"purchase": gin.H{
				"fullName":   result.Purchase.FullName,
				"ticketType": result.Purchase.TicketType,
				"email":      result.Purchase.Email,
			},
		})
	}
}
