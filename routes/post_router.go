package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func PostRouter(api *gin.RouterGroup, auth gin.HandlerFunc, ctl *controllers.PostController) {
	posts := api.Group("/posts", auth)
	posts.POST("", ctl.Create)
	posts.GET("/feed", ctl.Feed)
	posts.GET("/user/:userId", ctl.UserPosts)
	posts.POST("/:id/like", ctl.Like)
	posts.POST("/:id/comments", ctl.AddComment)
}
