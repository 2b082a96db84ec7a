// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wholesalenaija/admin-gateway/internal/config"
	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/handlers"
	"github.com/wholesalenaija/admin-gateway/internal/middleware"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Shared infrastructure
	client := upstream.NewClient(cfg.Upstream)
	feed := controller.NewFeed(100)

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage service: %v", err)
	}

	// Services
	authService := services.NewAuthService(cfg)
	productService := services.NewProductService(client, feed)
	categoryService := services.NewCategoryService(client, storageService, feed)
	bannerService := services.NewBannerService(client, storageService, feed)
	reportService := services.NewReportService(client, feed)
	verificationService := services.NewVerificationService(client, feed)
	userService := services.NewUserService(client, feed)
	transactionService := services.NewTransactionService(client, userService, feed)
	starterPackService := services.NewStarterPackService(client, feed)
	statsService := services.NewStatsService(productService, userService, reportService, verificationService, transactionService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	reportHandler := handlers.NewReportHandler(reportService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	starterPackHandler := handlers.NewStarterPackHandler(starterPackService)
	dashboardHandler := handlers.NewDashboardHandler(statsService, feed)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   "1.0.0",
		})
	})

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)
			admin.GET("/notifications", dashboardHandler.ListNotifications)

			products := admin.Group("/products")
			{
				products.GET("", productHandler.ListProducts)
				products.GET("/:id", productHandler.GetProduct)
				products.PATCH("/:id/status", productHandler.UpdateProductStatus)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.ListCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.POST("", middleware.UploadRateLimit(), categoryHandler.CreateCategory)
				categories.PATCH("/:id/name", categoryHandler.RenameCategory)
				categories.PATCH("/:id/archive", categoryHandler.SetCategoryArchived)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			banners := admin.Group("/banners")
			{
				banners.GET("", bannerHandler.ListBanners)
				banners.POST("", middleware.UploadRateLimit(), bannerHandler.CreateBanner)
				banners.PUT("/:id", bannerHandler.UpdateBanner)
				banners.PATCH("/:id/active", bannerHandler.SetBannerActive)
				banners.DELETE("/:id", bannerHandler.DeleteBanner)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("", reportHandler.ListReports)
				reports.PUT("/:id/resolve", reportHandler.ResolveReport)
				reports.PUT("/:id/reject", reportHandler.RejectReport)
			}

			verifications := admin.Group("/seller-verifications")
			{
				verifications.GET("", verificationHandler.ListVerifications)
				verifications.PATCH("/:id/approve", verificationHandler.ApproveVerification)
				verifications.PATCH("/:id/reject", verificationHandler.RejectVerification)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/sellers", userHandler.ListSellers)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id/suspend", userHandler.SuspendUser)
			}

			admin.GET("/transactions", transactionHandler.ListTransactions)

			starterPacks := admin.Group("/starter-packs")
			{
				starterPacks.GET("", starterPackHandler.ListStarterPacks)
				starterPacks.POST("", starterPackHandler.CreateStarterPack)
			}
		}
	}

	return r
}
