package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthController struct {
	sessions     *services.SessionService
	secureCookie bool
}

func NewAuthController(sessions *services.SessionService, secureCookie bool) *AuthController {
	return &AuthController{sessions: sessions, secureCookie: secureCookie}
}

// Login signs the user in against the backend and opens a session. The
// session token is returned in the body and as an HTTP-only cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	out, err := ac.sessions.Login(c.Request.Context(), models.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		respondError(c, err, "Login failed. Please try again.")
		return
	}

	maxAge := int(time.Until(out.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, out.SessionToken, maxAge, "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"token":     out.SessionToken,
		"expiresAt": out.ExpiresAt,
		"user":      out.User,
		"redirect":  services.HomePath(out.User.Role),
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	if err := ac.sessions.Logout(c.Request.Context(), auth.SessionID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
}

// Me returns the signed-in user's profile.
func (ac *AuthController) Me(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, auth.User)
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	msg, err := ac.sessions.ForgotPassword(c.Request.Context(), input.Email)
	if err != nil {
		respondError(c, err, "Failed to process request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
