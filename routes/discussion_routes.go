package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/controllers"
)

func SetupDiscussionRoutes(public, protected *gin.RouterGroup, commentController *controllers.CommentController) {
	// Reads are public, writes need a token.
	public.GET("/posts/:id/comments", commentController.GetComments)

	protected.POST("/posts/:id/comments", commentController.CreateComment)
	protected.POST("/comments/:id/replies", commentController.CreateReply)
}
