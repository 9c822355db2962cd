package admin

import (
	"net/http"

	"tickets-app/database"
	"tickets-app/internal/domain/purchases"

	"github.com/gin-gonic/gin"
)

type PurchaseRow struct {
	ID            string   `json:"id"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	TicketType    string   `json:"ticket_type"`
	Price         float64  `json:"price"`
	PaymentStatus string   `json:"payment_status"`
	CheckedIn     bool     `json:"checked_in"`
	CheckedInAt   *string  `json:"checked_in_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type Stats struct {
	TotalPurchases int64              `json:"total_purchases"`
	Approved       int64              `json:"approved"`
	CheckedIn      int64              `json:"checked_in"`
	Revenue        float64            `json:"revenue"`
	PerTier        map[string]int64   `json:"per_tier"`
}

// ListPurchases backs the check-in list: newest first, filterable by payment
// status and checked-in flag.
func ListPurchases(c *gin.Context) {
	q := database.DB.Model(&purchases.Purchase{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if checked := c.Query("checked_in"); checked != "" {
		q = q.Where("checked_in = ?", checked == "true")
	}

	var list []purchases.Purchase
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchases"})
		return
	}

	rows := make([]PurchaseRow, 0, len(list))
	for _, p := range list {
		row := PurchaseRow{
			ID:            p.ID,
			FullName:      p.FullName,
			Email:         p.Email,
			TicketType:    p.TicketType,
			Price:         p.Price,
			PaymentStatus: p.PaymentStatus,
			CheckedIn:     p.CheckedIn,
			CreatedAt:     p.CreatedAt.Format("2006-01-02 15:04"),
		}
		if p.CheckedInAt != nil {
			at := p.CheckedInAt.Format("2006-01-02 15:04")
			row.CheckedInAt = &at
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, rows)
}

// GetStats summarizes sales and attendance for the dashboard.
func GetStats(c *gin.Context) {
	var stats Stats

	if err := database.DB.Model(&purchases.Purchase{}).Count(&stats.TotalPurchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	database.DB.Model(&purchases.Purchase{}).
		Where("payment_status = ?", purchases.StatusApproved).
		Count(&stats.Approved)

	database.DB.Model(&purchases.Purchase{}).
		Where("checked_in = ?", true).
		Count(&stats.CheckedIn)

	var revenue *float64
	database.DB.Model(&purchases.Purchase{}).
		Where("payment_status = ?", purchases.StatusApproved).
		Select("SUM(price)").
		Scan(&revenue)
	if revenue != nil {
		stats.Revenue = *revenue
	}

	stats.PerTier = map[string]int64{}
	type tierCount struct {
		TicketType string
		Count      int64
	}
	var perTier []tierCount
	database.DB.Model(&purchases.Purchase{}).
		Where("payment_status = ?", purchases.StatusApproved).
		Select("ticket_type, COUNT(*) as count").
		Group("ticket_type").
		Scan(&perTier)
	for _, tc := range perTier {
		stats.PerTier[tc.TicketType] = tc.Count
	}

	c.JSON(http.StatusOK, stats)
}
