package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"hashly/database"
	"hashly/models"

	"github.com/gin-gonic/gin"
)

// AddComment attaches a comment to the given post id. The post itself is not
// looked up first; a stale id simply produces a dangling comment.
func AddComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("postID"))
	if err != nil {
		c.String(http.StatusNotFound, "post not found")
		return
	}

	text := c.PostForm("text")
	if text == "" {
		c.String(http.StatusBadRequest, "text is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	comment := models.Comment{Text: text, PostID: uint(postID)}
	if err := database.DB.WithContext(ctx).Create(&comment).Error; err != nil {
		log.Printf("AddComment error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to add comment")
		return
	}

	redirectBack(c)
}
