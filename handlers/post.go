package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hashly/database"
	"hashly/models"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// NewPostForm renders the post-creation form.
func NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "post.html", gin.H{
		"Title":    "New Post",
		"Username": c.GetString("username"),
		"Flash":    takeFlash(c),
	})
}

// CreatePost inserts a post owned by the session user. An attached image is
// written to the upload directory under its client-supplied filename; a
// repeated filename overwrites the previous file.
func CreatePost(c *gin.Context) {
	text := c.PostForm("text")
	tag, tagPresent := c.GetPostForm("tag")
	if text == "" {
		c.String(http.StatusBadRequest, "text is required")
		return
	}
	if !tagPresent {
		c.String(http.StatusBadRequest, "tag is required")
		return
	}

	var filename string
	if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			log.Printf("CreatePost mkdir error: %v", err)
			c.String(http.StatusInternalServerError, "Failed to save image")
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, file.Filename)); err != nil {
			log.Printf("CreatePost upload error: %v", err)
			c.String(http.StatusInternalServerError, "Failed to save image")
			return
		}
		filename = file.Filename
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post := models.Post{
		Text:          text,
		Tag:           tag,
		ImageFilename: filename,
		CreatedAt:     time.Now().UTC(),
		UserID:        c.GetUint("userId"),
	}

	if err := database.DB.WithContext(ctx).Create(&post).Error; err != nil {
		log.Printf("CreatePost error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}

	setFlash(c, "Post created!")
	c.Redirect(http.StatusFound, "/home")
}

// Home lists every post, newest first.
func Home(c *gin.Context) {
	renderPostList(c, "home.html", "Home", nil)
}

// OurPosts lists the session user's posts, newest first.
func OurPosts(c *gin.Context) {
	userID := c.GetUint("userId")
	renderPostList(c, "our.html", "Our Posts", &userID)
}

// Inbox mirrors OurPosts with its own page.
func Inbox(c *gin.Context) {
	userID := c.GetUint("userId")
	renderPostList(c, "inbox.html", "Inbox", &userID)
}

func renderPostList(c *gin.Context, template, title string, ownerID *uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Likes").
		Order("created_at DESC")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		log.Printf("renderPostList error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"Title":    title,
		"Username": c.GetString("username"),
		"Flash":    takeFlash(c),
		"Posts":    postViews(posts),
	})
}

func postViews(posts []models.Post) []gin.H {
	return lo.Map(posts, func(p models.Post, _ int) gin.H {
		return gin.H{
			"ID":            p.ID,
			"Text":          p.Text,
			"Tag":           p.Tag,
			"ImageFilename": p.ImageFilename,
			"CreatedAt":     p.CreatedAt,
			"Author":        p.User.Username,
			"Comments":      p.Comments,
			"LikeCount":     len(p.Likes),
		}
	})
}

// DeletePost removes a post together with its comments and likes, but only
// for the post's owner.
func DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("postID"))
	if err != nil {
		c.String(http.StatusNotFound, "post not found")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	if err := database.DB.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "post not found")
			return
		}
		log.Printf("DeletePost lookup error: %v", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	if post.UserID != c.GetUint("userId") {
		setFlash(c, "Unauthorized action!")
		c.Redirect(http.StatusFound, "/our")
		return
	}

	// Dependents go first, all inside one transaction.
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to delete post")
		return
	}

	setFlash(c, "Post deleted successfully!")
	c.Redirect(http.StatusFound, "/our")
}

// Trending counts posts per tag. Posts without a tag count under the empty
// tag. No ordering is promised.
func Trending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	type tagCount struct {
		Tag   string
		Count int64
	}

	var counts []tagCount
	err := database.DB.WithContext(ctx).
		Model(&models.Post{}).
		Select("tag, count(id) as count").
		Group("tag").
		Scan(&counts).Error
	if err != nil {
		log.Printf("Trending error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to fetch trending tags")
		return
	}

	hashtags := lo.Map(counts, func(tc tagCount, _ int) gin.H {
		return gin.H{"Tag": tc.Tag, "Count": tc.Count}
	})

	c.HTML(http.StatusOK, "trending.html", gin.H{
		"Title":    "Trending",
		"Username": c.GetString("username"),
		"Flash":    takeFlash(c),
		"Hashtags": hashtags,
	})
}

// HashtagPosts lists posts whose tag exactly matches the path parameter.
func HashtagPosts(c *gin.Context) {
	tag := c.Param("tag")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var posts []models.Post
	err := database.DB.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Likes").
		Where("tag = ?", tag).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Printf("HashtagPosts error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	c.HTML(http.StatusOK, "hashtag_posts.html", gin.H{
		"Title":    "#" + tag,
		"Username": c.GetString("username"),
		"Flash":    takeFlash(c),
		"Tag":      tag,
		"Posts":    postViews(posts),
	})
}
