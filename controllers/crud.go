package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// resourceController serves one back-office collection from the backend,
// with listing and validation done here.
type resourceController[T any] struct {
	client   *backend.Client
	resource func(*backend.Client) backend.Resource[T]
	listing  *services.Listing[T]
	perPage  int
	noun     string
	// validate checks an item before it is sent; existing is false on create.
	validate func(item *T, existing bool) []utils.FieldError
}

func (rc *resourceController[T]) backendFor(c *gin.Context) (backend.Resource[T], context.Context, bool) {
	auth, ok := currentAuth(c)
	if !ok {
		return backend.Resource[T]{}, nil, false
	}
	return rc.resource(rc.client.WithToken(auth.Token)), c.Request.Context(), true
}

func (rc *resourceController[T]) List(c *gin.Context) {
	res, ctx, ok := rc.backendFor(c)
	if !ok {
		return
	}

	items, err := res.List(ctx, nil)
	if err != nil {
		respondError(c, err, "Failed to fetch "+rc.noun+"s")
		return
	}

	page, err := rc.listing.Apply(items, listQuery(c, rc.listing.FieldNames(), rc.perPage))
	if errors.Is(err, services.ErrUnknownSortField) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown sort field: "+c.Query("sortBy"))
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rc *resourceController[T]) Get(c *gin.Context) {
	res, ctx, ok := rc.backendFor(c)
	if !ok {
		return
	}
	item, err := res.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch "+rc.noun)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (rc *resourceController[T]) Create(c *gin.Context) {
	res, ctx, ok := rc.backendFor(c)
	if !ok {
		return
	}

	var input T
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if respondInvalid(c, rc.validate(&input, false)) {
		return
	}

	created, err := res.Create(ctx, input)
	if err != nil {
		respondError(c, err, "Failed to save the "+rc.noun+". Please try again.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rc *resourceController[T]) Update(c *gin.Context) {
	res, ctx, ok := rc.backendFor(c)
	if !ok {
		return
	}

	var input T
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if respondInvalid(c, rc.validate(&input, true)) {
		return
	}

	updated, err := res.Update(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Failed to save the "+rc.noun+". Please try again.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rc *resourceController[T]) Delete(c *gin.Context) {
	res, ctx, ok := rc.backendFor(c)
	if !ok {
		return
	}
	if err := res.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete "+rc.noun)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": capitalize(rc.noun) + " deleted successfully"})
}

func (rc *resourceController[T]) Register(g *gin.RouterGroup) {
	g.GET("", rc.List)
	g.POST("", rc.Create)
	g.GET("/:id", rc.Get)
	g.PUT("/:id", rc.Update)
	g.DELETE("/:id", rc.Delete)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
