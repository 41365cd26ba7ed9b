package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func NotificationRouter(api *gin.RouterGroup, auth gin.HandlerFunc, ctl *controllers.NotificationController) {
	notifications := api.Group("/notifications", auth)
	notifications.GET("", ctl.List)
	notifications.PUT("/read-all", ctl.MarkAllRead)
	notifications.PUT("/:id/read", ctl.MarkRead)
}
