// Package api assembles the Echo application: routing, middleware, and the
// central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/handler"
	"github.com/freelaverse/web-gateway/internal/api/middleware"
	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// Deps carries everything the router needs. Services are constructed in
// main so their lifecycles (hub client, dispatcher) outlive any single
// request.
type Deps struct {
	Auth         ports.AuthService
	Registration ports.RegistrationService
	Feed         ports.FeedService
	Orders       ports.OrderService
	Accounts     ports.AccountService
	Payments     ports.PaymentService
	Catalog      ports.CatalogService

	Store  *session.Store
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("freelaverse_gateway"))
	e.Use(middleware.Guard(deps.Logger))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Store)
	registrationHandler := handler.NewRegistrationHandler(deps.Registration)
	clientHandler := handler.NewClientHandler(deps.Accounts, deps.Orders)
	professionalHandler := handler.NewProfessionalHandler(deps.Feed, deps.Accounts)
	paymentsHandler := handler.NewPaymentsHandler(deps.Payments, deps.Accounts)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)

	// --- Auth and registration (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/confirm-email", authHandler.ConfirmEmail)
	e.POST("/auth/resend-code", authHandler.ResendCode)
	e.POST("/auth/request-password-reset", authHandler.RequestPasswordReset)
	e.POST("/auth/reset-password", authHandler.ResetPassword)
	e.POST("/cadastro", registrationHandler.Submit)
	e.POST("/cadastro/steps/:step/validate", registrationHandler.ValidateStep)
	e.GET("/areas", catalogHandler.Areas)

	// --- Client area (role "1") ---
	e.GET("/client", clientHandler.Home)
	e.GET("/client/pedidos", clientHandler.Orders)
	e.POST("/client/pedidos", clientHandler.CreateOrder)
	e.POST("/client/pedidos/:id/cancelar", clientHandler.CancelOrder)
	e.GET("/client/desbloqueados", clientHandler.UnlockedOrders)
	e.GET("/client/conta", clientHandler.Account)

	// --- Professional area (role "2") ---
	e.GET("/professional", professionalHandler.Feed)
	e.GET("/professional/servico/:id", professionalHandler.JobDetail)
	e.POST("/professional/servico/:id/desbloquear", professionalHandler.Unlock)
	e.GET("/professional/desbloqueados", professionalHandler.Unlocked)
	e.GET("/professional/conta", professionalHandler.Account)
	e.GET("/professional/creditos", paymentsHandler.Credits)
	e.POST("/professional/creditos/pix", paymentsHandler.StartPixCharge)
	e.POST("/professional/creditos/watch", paymentsHandler.Watch)
	e.DELETE("/professional/creditos/watch", paymentsHandler.Unwatch)
	e.GET("/professional/creditos/status", paymentsHandler.PaymentStatus)
	e.POST("/professional/assinatura/checkout", paymentsHandler.SubscriptionCheckout)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
