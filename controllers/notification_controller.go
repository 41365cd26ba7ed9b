package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/middlewares"
	"socialnet/services"
)

// NotificationController serves the notification list and read transitions.
type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (ctl *NotificationController) List(c *gin.Context) {
	caller, _ := middlewares.CurrentUser(c)

	notifications, err := ctl.notifications.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	n, err := ctl.notifications.MarkRead(c.Request.Context(), id, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (ctl *NotificationController) MarkAllRead(c *gin.Context) {
	caller, _ := middlewares.CurrentUser(c)

	count, err := ctl.notifications.MarkAllRead(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}
