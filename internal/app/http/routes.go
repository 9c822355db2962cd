package routes

import (
	adminapi "tickets-app/internal/api/admin"
	authapi "tickets-app/internal/api/auth"
	checkinapi "tickets-app/internal/api/checkin"
	contentapi "tickets-app/internal/api/content"
	"tickets-app/internal/api/payments"
	stripewebhooks "tickets-app/internal/api/stripewebhook"
	tiersapi "tickets-app/internal/api/tiers"
	"tickets-app/internal/app/http/middleware"
	"tickets-app/internal/domain/staff"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	// webhook body must reach the handler untouched for signature verification
	r.POST("/webhook", stripewebhooks.StripeWebhook)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/create-payment", payments.CreatePayment)
	public.GET("/tiers", tiersapi.ListTiers)
	public.GET("/content", contentapi.GetContent)
	public.POST("/auth/login", authapi.Login)

	// Door staff and admins
	door := r.Group("/")
	door.Use(middleware.AuthMiddleware())
	door.POST("/checkin", checkinapi.CheckIn)

	// Admin dashboard
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(staff.RoleAdmin))
	admin.GET("/purchases", adminapi.ListPurchases)
	admin.GET("/stats", adminapi.GetStats)
	admin.PUT("/content", contentapi.SaveContent)
	admin.GET("/content/revisions", contentapi.ListRevisions)
	admin.POST("/content/restore", contentapi.RestoreContent)
	admin.POST("/tiers", tiersapi.UpsertTier)
}
