package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/models"
	"github.com/iamkartiks/Simple-Blog-RestAPI/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type CreateReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// GetComments godoc
// @Summary List comments on a post
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} models.Comment
// @Router /posts/{id}/comments [get]
func (cc *CommentController) GetComments(c *gin.Context) {
	postID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	if err := cc.DB.Where("post_id = ?", post.ID).Order("id").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body CreateCommentRequest true "Comment body"
// @Success 201 {object} models.Comment
// @Router /posts/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	postID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		Body:   req.Body,
		UserID: user.UserID,
		PostID: post.ID,
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// CreateReply godoc
// @Summary Reply to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param reply body CreateReplyRequest true "Reply body"
// @Success 201 {object} models.Reply
// @Router /comments/{id}/replies [post]
func (cc *CommentController) CreateReply(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	commentID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := models.Reply{
		Body:      req.Body,
		UserID:    user.UserID,
		CommentID: comment.ID,
	}

	if err := cc.DB.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}

	c.JSON(http.StatusCreated, reply)
}
