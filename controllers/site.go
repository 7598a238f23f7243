package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/config"
)

// SiteController serves the public marketing pages.
type SiteController struct {
	site *config.SiteContent
}

func NewSiteController(site *config.SiteContent) *SiteController {
	if site == nil {
		site = &config.SiteContent{}
	}
	return &SiteController{site: site}
}

func (sc *SiteController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    sc.site.Name,
		"tagline": sc.site.Tagline,
		"address": sc.site.Address,
		"phone":   sc.site.Phone,
		"email":   sc.site.Email,
	})
}

func (sc *SiteController) Services(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(sc.site.Services))
}

func (sc *SiteController) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(sc.site.Pricing))
}

func (sc *SiteController) Team(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(sc.site.Team))
}

func (sc *SiteController) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(sc.site.Testimonials))
}

func (sc *SiteController) WorkingHours(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(sc.site.WorkingHours))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (sc *SiteController) Register(g *gin.RouterGroup) {
	g.GET("/home", sc.Home)
	g.GET("/services", sc.Services)
	g.GET("/pricing", sc.Pricing)
	g.GET("/team", sc.Team)
	g.GET("/testimonials", sc.Testimonials)
	g.GET("/working-hours", sc.WorkingHours)
}
