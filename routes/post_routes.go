package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPostDetail)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
		posts.GET("/by-user/:username", postController.GetUserPosts)
	}
}
