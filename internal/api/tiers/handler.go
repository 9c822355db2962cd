package tiersapi

import (
	"encoding/json"
	"net/http"

	"tickets-app/database"
	"tickets-app/internal/domain/tiers"

	"github.com/gin-gonic/gin"
)

// ListTiers feeds the landing page's ticket section.
func ListTiers(c *gin.Context) {
	var list []tiers.TicketTier
	err := database.DB.
		Where("active = ?", true).
		Order("sort_index ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ticket tiers"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpsertTier creates or updates a tier by code. Sold purchases keep the price
// they were bought at.
func UpsertTier(c *gin.Context) {
	var body struct {
		Code      string          `json:"code"`
		Label     string          `json:"label"`
		Price     float64         `json:"price"`
		Perks     json.RawMessage `json:"perks"`
		Active    *bool           `json:"active"`
		SortIndex int             `json:"sortIndex"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Code == "" || body.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code or label"})
		return
	}
	if body.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}
	perks := body.Perks
	if len(perks) == 0 {
		perks = json.RawMessage("[]")
	}

	var tier tiers.TicketTier
	err := database.DB.Where("code = ?", body.Code).First(&tier).Error
	if err == nil {
		updates := map[string]interface{}{
			"label":      body.Label,
			"price":      body.Price,
			"perks":      perks,
			"active":     active,
			"sort_index": body.SortIndex,
		}
		if err := database.DB.Model(&tier).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tier"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": tier.Code})
		return
	}

	tier = tiers.TicketTier{
		Code:      body.Code,
		Label:     body.Label,
		Price:     body.Price,
		Perks:     perks,
		Active:    active,
		SortIndex: body.SortIndex,
	}
	// Select forces zero values (active=false, sort_index=0) past the column defaults
	if err := database.DB.
		Select("Code", "Label", "Price", "Perks", "Active", "SortIndex").
		Create(&tier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": tier.Code})
}
