package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.LikePost)
	}
}
