package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common constants and variables shared across all handler files
const flashCookie = "flash"

var uploadDir = "static/uploads"

// SetUploadDir sets the directory post images are saved into.
func SetUploadDir(dir string) {
	uploadDir = dir
}

// setFlash stores a one-shot message shown on the next rendered page.
// gin escapes the cookie value on write and unescapes it on read.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}

// redirectBack sends the browser to the referring page, or home when the
// referrer is unknown.
func redirectBack(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/home"
	}
	c.Redirect(http.StatusFound, target)
}
