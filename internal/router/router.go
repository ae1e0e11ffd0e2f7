// Package router wires services, handlers and middleware into the gin engine
// that serves the dompet API.
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"dompet/internal/config"
	_ "dompet/internal/docs" // Import swagger docs
	"dompet/internal/handlers"
	"dompet/internal/middleware"
	"dompet/internal/models"
	"dompet/internal/response"
	"dompet/internal/services"
	"dompet/internal/token"
	"dompet/internal/validator"
)

// New builds the application router on top of db.
func New(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	issuer, err := token.NewIssuer(token.Config{
		Secret:    cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
		Algorithm: cfg.JWT.Algorithm,
		TTL:       cfg.JWT.ExpiresIn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	validator.Register()

	// Services
	auditService := services.NewAuditService(db)
	authService := services.NewAuthService(db, issuer, services.NewBcryptHasher(services.DefaultPasswordCost))
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())
	router.Use(response.StatusCodes(cfg.StatusCodes))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	bearer := middleware.Auth(issuer)

	// Auth
	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.POST("/login/admin", authHandler.LoginAdmin)
	v1.GET("/profile", bearer, authHandler.GetProfile)
	v1.PATCH("/profile", bearer, authHandler.EditProfile)
	v1.POST("/users", bearer, middleware.RequireRole(models.RoleAdmin), authHandler.AddUser)

	// Categories: reads and single create are public.
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/bulk", bearer, categoryHandler.BulkCreateCategories)
	categories.PATCH("/:id", bearer, categoryHandler.UpdateCategory)
	categories.DELETE("", bearer, categoryHandler.DeleteCategories)

	transactions := v1.Group("/transactions", bearer)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("", transactionHandler.DeleteTransactions)

	return router, nil
}
