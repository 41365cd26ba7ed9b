package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/apperrors"
	"socialnet/middlewares"
	"socialnet/repository"
	"socialnet/services"
)

// UserController serves profiles and the follow graph.
type UserController struct {
	social *services.SocialService
}

func NewUserController(social *services.SocialService) *UserController {
	return &UserController{social: social}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := ctl.social.Profile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Username       string `json:"username" validate:"required"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validationf("username is required"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apperrors.Validationf("username is required"))
		return
	}

	user, err := ctl.social.UpdateProfile(c.Request.Context(), caller, id, repository.ProfileUpdate{
		Username:       req.Username,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type avatarRequest struct {
	AvatarURL string `json:"avatarUrl" validate:"required"`
}

func (ctl *UserController) SetAvatar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	var req avatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validationf("avatar url is required"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apperrors.Validationf("avatar url is required"))
		return
	}

	user, err := ctl.social.SetAvatar(c.Request.Context(), caller, id, req.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Follow(c *gin.Context) {
	target, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	if err := ctl.social.Follow(c.Request.Context(), caller, target); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user followed successfully"})
}

func (ctl *UserController) Unfollow(c *gin.Context) {
	target, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	if err := ctl.social.Unfollow(c.Request.Context(), caller, target); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user unfollowed successfully"})
}

func (ctl *UserController) Followers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	users, err := ctl.social.Followers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) Following(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	users, err := ctl.social.Following(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
