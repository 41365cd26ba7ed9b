package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func SearchRouter(api *gin.RouterGroup, auth gin.HandlerFunc, ctl *controllers.SearchController) {
	search := api.Group("/search", auth)
	search.GET("/users", ctl.Users)
	search.GET("/posts", ctl.Posts)
}
