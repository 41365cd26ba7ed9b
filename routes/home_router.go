package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func HomeRouter(api *gin.RouterGroup) {
	api.GET("/health", controllers.Health)
}
