package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/controllers"
)

func SetupSearchRoutes(public *gin.RouterGroup, searchController *controllers.SearchController) {
	public.GET("/posts/search", searchController.SearchPosts)
}
