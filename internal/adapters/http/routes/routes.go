package routes

import (
	"peerloan/internal/adapters/http/handlers"
	"peerloan/internal/adapters/http/middleware"
	"peerloan/internal/adapters/persistence/repositories"
	"peerloan/internal/config"
	"peerloan/internal/core/services"
	"peerloan/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	authzService := services.NewAuthzService(userRepo, loanRepo)
	loanService := services.NewLoanService(loanRepo, authzService, cfg.Location(), cfg.Loans.EmptyListNotFound)
	authService := services.NewAuthService(userRepo, password.NewBcrypt(), cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, strict rate limit)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Loan routes. A bearer token is optional: authenticated callers
	// act as their token's subject, others as the payload's lender.
	loanRoutes := apiV1.Group("/loans")
	loanRoutes.Use(middleware.OptionalAuth(cfg))
	loanRoutes.Post("/", loanHandler.Create)
	loanRoutes.Get("/", loanHandler.List)
	loanRoutes.Get("/:id", loanHandler.GetByID)
	loanRoutes.Put("/:id", loanHandler.Update)
	loanRoutes.Delete("/:id", loanHandler.Delete)
}
