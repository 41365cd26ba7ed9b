package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/apperrors"
	"socialnet/middlewares"
	"socialnet/services"
)

// PostController serves post creation, likes, comments and the feed.
type PostController struct {
	posts *services.PostService
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

type createPostRequest struct {
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

func (ctl *PostController) Create(c *gin.Context) {
	caller, _ := middlewares.CurrentUser(c)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}

	post, err := ctl.posts.Create(c.Request.Context(), caller, req.Content, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (ctl *PostController) Feed(c *gin.Context) {
	caller, _ := middlewares.CurrentUser(c)

	feed, err := ctl.posts.Feed(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (ctl *PostController) UserPosts(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	posts, err := ctl.posts.UserPosts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) Like(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	if err := ctl.posts.Like(c.Request.Context(), postID, caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post liked successfully"})
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (ctl *PostController) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}

	comment, err := ctl.posts.AddComment(c.Request.Context(), postID, caller, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
