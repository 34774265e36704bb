// Command server runs the ledgerly invoicing API.
//
// @title Ledgerly API
// @version 1.0
// @description Invoicing and payments backend: clients, invoices, quotes, payments.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"

	"ledgerly/internal/config"
	"ledgerly/internal/handler"
	"ledgerly/internal/pdf"
	"ledgerly/internal/repository/postgres"
	"ledgerly/internal/router"
	"ledgerly/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	quoteRepo := postgres.NewQuoteRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	taxRepo := postgres.NewTaxRepo(db)
	paymentModeRepo := postgres.NewPaymentModeRepo(db)
	settingRepo := postgres.NewSettingRepo(db)

	// Initialize PDF generator
	artifacts, err := pdf.NewGenerator(cfg.PDF)
	if err != nil {
		return fmt.Errorf("failed to initialize pdf generator: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo, invoiceRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, paymentRepo, clientRepo, settingRepo, artifacts)
	quoteSvc := service.NewQuoteService(quoteRepo, invoiceRepo, clientRepo, settingRepo, artifacts)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo, settingRepo)
	taxSvc := service.NewTaxService(taxRepo)
	paymentModeSvc := service.NewPaymentModeService(paymentModeRepo)
	settingSvc := service.NewSettingService(settingRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	clientH := handler.NewClientHandler(clientSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, paymentSvc)
	quoteH := handler.NewQuoteHandler(quoteSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	taxH := handler.NewTaxHandler(taxSvc)
	paymentModeH := handler.NewPaymentModeHandler(paymentModeSvc)
	settingH := handler.NewSettingHandler(settingSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, clientH, invoiceH, quoteH, paymentH,
		taxH, paymentModeH, settingH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
