package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/services"
)

// Navigation returns the sidebar for the signed-in user's role.
func Navigation(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":  auth.Role(),
		"items": services.Navigation(auth.Role()),
	})
}
