package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/configs"
	"github.com/Edsonffff/catering-new/controllers"
	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/middlewares"
	"github.com/Edsonffff/catering-new/repository"
	"github.com/Edsonffff/catering-new/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "API running"})
	})

	// Services
	authSvc := services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(repository.NewMenuRepository(db))
	packageSvc := services.NewPackageService(repository.NewPackageRepository(db))
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db))
	reviewSvc := services.NewReviewService(repository.NewReviewRepository(db))
	gallerySvc := services.NewGalleryService(repository.NewGalleryRepository(db))

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadDir)
	packageCtrl := controllers.NewPackageController(packageSvc, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	galleryCtrl := controllers.NewGalleryController(gallerySvc, cfg.UploadDir)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	api := r.Group("/api", middlewares.RateLimit(rate.Every(time.Second), 100))
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Server is running"})
	})

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", authRequired, authCtrl.Me)
	}

	// Menu
	menu := api.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.Categories)
		menu.GET("/items", menuCtrl.Items)

		menu.POST("/categories", adminOnly, menuCtrl.CreateCategory)
		menu.PUT("/categories/:id", adminOnly, menuCtrl.UpdateCategory)
		menu.DELETE("/categories/:id", adminOnly, menuCtrl.DeleteCategory)

		menu.POST("/items", adminOnly, menuCtrl.CreateItem)
		menu.PUT("/items/:id", adminOnly, menuCtrl.UpdateItem)
		menu.DELETE("/items/:id", adminOnly, menuCtrl.DeleteItem)
	}

	// Event packages
	packages := api.Group("/packages")
	{
		packages.GET("", packageCtrl.List)
		packages.GET("/:id", packageCtrl.Get)

		packages.POST("", adminOnly, packageCtrl.Create)
		packages.PUT("/:id", adminOnly, packageCtrl.Update)
		packages.DELETE("/:id", adminOnly, packageCtrl.Delete)
	}

	// Orders: placement is public, everything else is admin.
	orders := api.Group("/orders")
	{
		orders.POST("", orderCtrl.Create)

		orders.GET("", adminOnly, orderCtrl.List)
		orders.GET("/stats/dashboard", adminOnly, orderCtrl.Dashboard)
		orders.GET("/:id", adminOnly, orderCtrl.Detail)
		orders.PUT("/:id/status", adminOnly, orderCtrl.UpdateStatus)
		orders.DELETE("/:id", adminOnly, orderCtrl.Delete)
	}

	// Reviews
	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewCtrl.ListApproved)
		reviews.POST("", reviewCtrl.Create)

		reviews.GET("/all", adminOnly, reviewCtrl.ListAll)
		reviews.PUT("/:id/approve", adminOnly, reviewCtrl.Approve)
		reviews.DELETE("/:id", adminOnly, reviewCtrl.Delete)
	}

	// Gallery
	gallery := api.Group("/gallery")
	{
		gallery.GET("", galleryCtrl.List)

		gallery.GET("/all", adminOnly, galleryCtrl.ListAll)
		gallery.POST("", adminOnly, galleryCtrl.Create)
		gallery.PUT("/:id", adminOnly, galleryCtrl.Update)
		gallery.DELETE("/:id", adminOnly, galleryCtrl.Delete)
	}
}
