package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/models"
	"gorm.io/gorm"
)

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// escapeLike neutralizes LIKE wildcards so the keyword matches as a literal
// substring.
var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPosts godoc
// @Summary Search posts by keyword
// @Description Case-insensitive substring match over title and body. Without a
// @Description query parameter every post is returned.
// @Tags search
// @Produce json
// @Param query query string false "Search keyword"
// @Success 200 {array} models.Post
// @Router /posts/search [get]
func (sc *SearchController) SearchPosts(c *gin.Context) {
	query := sc.DB.Model(&models.Post{}).Order("id")

	if keyword := c.Query("query"); keyword != "" {
		pattern := "%" + escapeLike.Replace(strings.ToLower(keyword)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(body) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}
