package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/config"
)

func TestSite_Sections(t *testing.T) {
	r := gin.New()
	NewSiteController(&config.SiteContent{
		Name:     "HairLab",
		Services: []config.SiteService{{Title: "Haircut", Price: "300"}},
	}).Register(r.Group("/site"))

	w := do(r, http.MethodGet, "/site/home", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"HairLab"`)

	var services []config.SiteService
	w = do(r, http.MethodGet, "/site/services", "", nil)
	decode(t, w, &services)
	assert.Equal(t, "Haircut", services[0].Title)

	w = do(r, http.MethodGet, "/site/team", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}
