package server

import (
	"fmt"

	"github.com/farellandr/ticketservice/config"
	"github.com/farellandr/ticketservice/internal/handlers"
	"github.com/farellandr/ticketservice/internal/logger"
	"github.com/farellandr/ticketservice/internal/middleware"
	"github.com/farellandr/ticketservice/internal/services"
	"github.com/farellandr/ticketservice/internal/thirdparty/paymentgateway"
	"github.com/farellandr/ticketservice/internal/thirdparty/seatbooking"
	"github.com/gin-gonic/gin"
)

func Start(cfg *config.Config, log *logger.Logger) error {
	ticketService, err := NewTicketService(cfg, log)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	setupRoutes(r, ticketService, cfg.JWT.Secret)

	log.Info("server starting", "port", cfg.Server.Port)
	return r.Run(":" + cfg.Server.Port)
}

// NewTicketService wires the gateway adapters to whatever ledger database and
// invoice provider the configuration enables.
func NewTicketService(cfg *config.Config, log *logger.Logger) (*services.TicketService, error) {
	paymentOpts := []paymentgateway.Option{paymentgateway.WithLogger(log.With("component", "paymentgateway"))}
	seatOpts := []seatbooking.Option{seatbooking.WithLogger(log.With("component", "seatbooking"))}

	if cfg.Database.Enabled() {
		db, err := config.InitDatabase(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %v", err)
		}
		paymentOpts = append(paymentOpts, paymentgateway.WithDatabase(db))
		seatOpts = append(seatOpts, seatbooking.WithDatabase(db))
	} else {
		log.Warn("DB_HOST not set, payments and reservations will not be recorded")
	}

	if client := config.InitXenditClient(cfg.Xendit); client != nil {
		paymentOpts = append(paymentOpts, paymentgateway.WithInvoiceCreator(paymentgateway.NewXenditInvoiceCreator(client)))
	} else {
		log.Warn("XENDIT_SECRET_KEY not set, payment gateway running in sandbox mode")
	}

	return services.NewTicketService(
		services.WithPaymentService(paymentgateway.NewTicketPaymentService(paymentOpts...)),
		services.WithSeatReservationService(seatbooking.NewSeatReservationService(seatOpts...)),
		services.WithPriceList(cfg.Pricing),
		services.WithLogger(log.With("component", "ticketservice")),
	), nil
}

func NewRouter(ticketService *services.TicketService, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	setupRoutes(r, ticketService, jwtSecret)
	return r
}

func setupRoutes(r *gin.Engine, ticketService *services.TicketService, jwtSecret string) {
	r.Use(middleware.TicketServiceMiddleware(ticketService))

	r.GET("/healthz", handlers.Health)

	public := r.Group("/v1")
	{
		public.GET("/prices", handlers.ListPrices)
	}

	purchases := r.Group("/v1/purchases")
	if jwtSecret != "" {
		purchases.Use(middleware.JWTAuthMiddleware(jwtSecret))
	}
	{
		purchases.POST("", handlers.PurchaseTickets)
		purchases.POST("/quote", handlers.QuotePurchase)
	}
}
