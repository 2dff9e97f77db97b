package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"hashly/database"
	"hashly/middleware"
	"hashly/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Index renders the login page, or sends an already-authenticated browser
// straight to the feed.
func Index(c *gin.Context) {
	if tokenString, err := c.Cookie(middleware.SessionCookie); err == nil && tokenString != "" {
		if _, err := middleware.ParseSessionToken(tokenString); err == nil {
			c.Redirect(http.StatusFound, "/home")
			return
		}
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
		"Flash": takeFlash(c),
	})
}

func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}

// Login authenticates a username/password form. An unknown username is
// treated as a signup: the account is created and logged in immediately.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.String(http.StatusBadRequest, "username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error

	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			setFlash(c, "Wrong password!")
			c.Redirect(http.StatusFound, "/")
			return
		}
		establishSession(c, user, "Login successful!")

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Auto signup if user does not exist
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user = models.User{Username: username, PasswordHash: string(hashed)}
		if err := database.DB.WithContext(ctx).Create(&user).Error; err != nil {
			log.Printf("Login auto-signup error: %v", err)
			c.String(http.StatusInternalServerError, "Failed to create user")
			return
		}
		establishSession(c, user, "Account created and logged in!")

	default:
		log.Printf("Login lookup error: %v", err)
		c.String(http.StatusInternalServerError, "Database error")
	}
}

func establishSession(c *gin.Context, user models.User, message string) {
	token, err := middleware.NewSessionToken(user.ID, user.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 24*60*60, "/", "", false, true)
	setFlash(c, message)
	c.Redirect(http.StatusFound, "/home")
}

// Logout clears the session cookie unconditionally.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "Logged out!")
	c.Redirect(http.StatusFound, "/")
}
