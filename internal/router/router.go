package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/handler"
	"ledgerly/internal/middleware"
	"ledgerly/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	clientH *handler.ClientHandler,
	invoiceH *handler.InvoiceHandler,
	quoteH *handler.QuoteHandler,
	paymentH *handler.PaymentHandler,
	taxH *handler.TaxHandler,
	paymentModeH *handler.PaymentModeHandler,
	settingH *handler.SettingHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)
	protected.POST("/auth/register", middleware.RequireRole(domain.UserRoleAdmin), authH.Register)

	// Clients
	clients := protected.Group("/clients")
	clients.POST("", clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.GetByID)
	clients.PATCH("/:id", clientH.Update)
	clients.DELETE("/:id", clientH.Delete)
	clients.GET("/:id/summary", clientH.Summary)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/export", invoiceH.Export)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PATCH("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/payments", invoiceH.ListPayments)

	// Quotes
	quotes := protected.Group("/quotes")
	quotes.POST("", quoteH.Create)
	quotes.GET("", quoteH.List)
	quotes.GET("/:id", quoteH.GetByID)
	quotes.PATCH("/:id", quoteH.Update)
	quotes.DELETE("/:id", quoteH.Delete)
	quotes.POST("/:id/convert", quoteH.Convert)

	// Payments
	payments := protected.Group("/payments")
	payments.POST("", paymentH.Create)
	payments.GET("", paymentH.List)
	payments.GET("/:id", paymentH.GetByID)

	// Taxes
	taxes := protected.Group("/taxes")
	taxes.POST("", middleware.RequireRole(domain.UserRoleAdmin), taxH.Create)
	taxes.GET("", taxH.List)
	taxes.GET("/:id", taxH.GetByID)
	taxes.PATCH("/:id", middleware.RequireRole(domain.UserRoleAdmin), taxH.Update)
	taxes.DELETE("/:id", middleware.RequireRole(domain.UserRoleAdmin), taxH.Delete)

	// Payment modes
	paymentModes := protected.Group("/payment-modes")
	paymentModes.POST("", middleware.RequireRole(domain.UserRoleAdmin), paymentModeH.Create)
	paymentModes.GET("", paymentModeH.List)
	paymentModes.GET("/:id", paymentModeH.GetByID)
	paymentModes.PATCH("/:id", middleware.RequireRole(domain.UserRoleAdmin), paymentModeH.Update)
	paymentModes.DELETE("/:id", middleware.RequireRole(domain.UserRoleAdmin), paymentModeH.Delete)

	// Settings
	settings := protected.Group("/settings")
	settings.GET("", settingH.List)
	settings.GET("/:key", settingH.Get)
	settings.PUT("", middleware.RequireRole(domain.UserRoleAdmin), settingH.Upsert)

	return r
}
