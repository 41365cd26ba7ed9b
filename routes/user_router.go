package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func UserRouter(api *gin.RouterGroup, auth gin.HandlerFunc, ctl *controllers.UserController) {
	profile := api.Group("/profile", auth)
	profile.GET("/:id", ctl.GetProfile)
	profile.PUT("/:id", ctl.UpdateProfile)
	profile.POST("/:id/avatar", ctl.SetAvatar)

	users := api.Group("/users", auth)
	users.GET("/:id", ctl.GetProfile)
	users.POST("/:id/follow", ctl.Follow)
	users.POST("/:id/unfollow", ctl.Unfollow)
	users.GET("/:id/followers", ctl.Followers)
	users.GET("/:id/following", ctl.Following)
}
