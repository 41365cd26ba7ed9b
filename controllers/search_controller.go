package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/services"
)

// SearchController serves substring search over users and posts.
type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

func (ctl *SearchController) Users(c *gin.Context) {
	users, err := ctl.search.Users(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *SearchController) Posts(c *gin.Context) {
	posts, err := ctl.search.Posts(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
