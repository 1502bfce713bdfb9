package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"restaurant-forum-backend/internal/config"
	"restaurant-forum-backend/internal/database"
	"restaurant-forum-backend/internal/handler"
	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/repository"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	restaurantRepo := repository.NewRestaurantRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	userService := service.NewUserService(userRepo, restaurantRepo, commentRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo, categoryRepo, commentRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	commentService := service.NewCommentService(commentRepo, restaurantRepo)
	adminService := service.NewAdminService(restaurantRepo, userRepo, categoryRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Serve uploaded avatars and restaurant images
	r.Static("/"+cfg.Upload.Dir, cfg.Upload.Dir)

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, cfg.Upload.Dir)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	commentHandler := handler.NewCommentHandler(commentService)
	adminHandler := handler.NewAdminHandler(adminService, cfg.Upload.Dir)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "restaurant-forum-backend",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/signup", authHandler.SignUp)
		api.POST("/signin", authHandler.SignIn)

		// Leaderboards vary per viewer but are open to anonymous requests
		api.GET("/restaurants/top", middleware.OptionalAuthenticated(authService), restaurantHandler.GetTopRestaurants)
		api.GET("/users/top", middleware.OptionalAuthenticated(authService), userHandler.GetTopUsers)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.Authenticated(authService))
		{
			authed.POST("/logout", authHandler.Logout)

			authed.GET("/restaurants", restaurantHandler.GetRestaurants)
			authed.GET("/restaurants/feeds", restaurantHandler.GetFeeds)
			authed.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
			authed.GET("/restaurants/:id/dashboard", restaurantHandler.GetDashboard)

			authed.GET("/categories", categoryHandler.GetCategories)
			authed.GET("/categories/:id", categoryHandler.GetCategories)

			authed.GET("/users/:id", userHandler.GetUser)
			authed.PUT("/users/:id", userHandler.PutUser)

			authed.POST("/favorite/:restaurantId", userHandler.AddFavorite)
			authed.DELETE("/favorite/:restaurantId", userHandler.RemoveFavorite)
			authed.POST("/like/:restaurantId", userHandler.AddLike)
			authed.DELETE("/like/:restaurantId", userHandler.RemoveLike)
			authed.POST("/following/:userId", userHandler.AddFollowing)
			authed.DELETE("/following/:userId", userHandler.RemoveFollowing)

			authed.POST("/comments", commentHandler.CreateComment)
			authed.DELETE("/comments/:id", middleware.AdminOnly(), commentHandler.DeleteComment)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.Authenticated(authService), middleware.AdminOnly())
		{
			admin.GET("/restaurants", adminHandler.GetRestaurants)
			admin.POST("/restaurants", adminHandler.CreateRestaurant)
			admin.GET("/restaurants/:id", adminHandler.GetRestaurant)
			admin.PUT("/restaurants/:id", adminHandler.UpdateRestaurant)
			admin.DELETE("/restaurants/:id", adminHandler.DeleteRestaurant)

			admin.GET("/users", adminHandler.GetUsers)
			admin.PATCH("/users/:id", adminHandler.ToggleAdmin)

			admin.POST("/categories", categoryHandler.CreateCategory)
			admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
			admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
		}
	}

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
