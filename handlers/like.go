package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hashly/database"
	"hashly/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddLike records one like per (post, user) pair. A repeat attempt is a
// no-op with a flash message. There is no unlike. The check-then-insert is
// not guarded against concurrent duplicates.
func AddLike(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("postID"))
	if err != nil {
		c.String(http.StatusNotFound, "post not found")
		return
	}

	userID := c.GetUint("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Check if already liked by this user
	var existing models.Like
	err = database.DB.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&existing).Error
	if err == nil {
		setFlash(c, "You already liked this post!")
		redirectBack(c)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("AddLike lookup error: %v", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	like := models.Like{PostID: uint(postID), UserID: userID}
	if err := database.DB.WithContext(ctx).Create(&like).Error; err != nil {
		log.Printf("AddLike error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to add like")
		return
	}

	setFlash(c, "Post liked!")
	redirectBack(c)
}
