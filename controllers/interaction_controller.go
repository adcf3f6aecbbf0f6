package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamkartiks/Simple-Blog-RestAPI/models"
	"github.com/iamkartiks/Simple-Blog-RestAPI/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// addLike inserts the like row and bumps the counter. A duplicate-key error
// means a concurrent request already inserted and counted this like; that
// outcome stands, so the error is swallowed without a second increment.
func addLike(tx *gorm.DB, postID, userID uint) error {
	like := models.Like{
		UserID: userID,
		PostID: postID,
	}
	if err := tx.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return tx.Model(&models.Post{}).Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + ?", 1)).Error
}

// removeLike deletes the like row and decrements the counter only when this
// request actually removed a row. A delete that affects zero rows lost a race
// to a concurrent unlike that already decremented; decrementing again would
// drag like_count below the true row count.
func removeLike(tx *gorm.DB, like *models.Like) error {
	res := tx.Delete(like)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}
	return tx.Model(&models.Post{}).Where("id = ?", like.PostID).
		Update("like_count", gorm.Expr("like_count - ?", 1)).Error
}

// LikePost godoc
// @Summary Like or unlike a post
// @Description Toggles the caller's like; the row mutation and the like_count
// @Description update commit in one transaction, so the counter always matches
// @Description the number of like rows.
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Router /posts/{id}/like [post]
func (ic *InteractionController) LikePost(c *gin.Context) {
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
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		var existingLike models.Like
		result := tx.Where("post_id = ? AND user_id = ?", post.ID, user.UserID).First(&existingLike)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return addLike(tx, post.ID, user.UserID)
		}
		if result.Error != nil {
			return result.Error
		}
		return removeLike(tx, &existingLike)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	if err := ic.DB.First(&post, post.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}
