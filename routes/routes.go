package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/controllers"
	"github.com/iamkartiks/Simple-Blog-RestAPI/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	userController := controllers.NewUserController(db)
	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db)
	interactionController := controllers.NewInteractionController(db)
	commentController := controllers.NewCommentController(db)
	searchController := controllers.NewSearchController(db)

	// Public routes
	public := r.Group("")
	{
		public.GET("/users", userController.ListUsers)
		public.POST("/users/add", userController.Register)
		public.POST("/login", authController.Login)
		public.POST("/token/refresh", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())

	SetupPostRoutes(protected, postController)
	SetupInteractionRoutes(protected, interactionController)
	SetupDiscussionRoutes(public, protected, commentController)
	SetupSearchRoutes(public, searchController)
}
