package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func MessageRouter(api *gin.RouterGroup, auth gin.HandlerFunc, ctl *controllers.MessageController) {
	messages := api.Group("/messages", auth)
	messages.POST("/:recipientId", ctl.Send)
	messages.GET("/:userId", ctl.Conversation)
}
