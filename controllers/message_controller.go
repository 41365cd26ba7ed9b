package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/apperrors"
	"socialnet/middlewares"
	"socialnet/services"
)

// MessageController serves the two-party messaging surface.
type MessageController struct {
	messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{messages: messages}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (ctl *MessageController) Send(c *gin.Context) {
	recipient, ok := pathID(c, "recipientId")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apperrors.Validationf("content is required"))
		return
	}

	msg, err := ctl.messages.Send(c.Request.Context(), caller, recipient, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (ctl *MessageController) Conversation(c *gin.Context) {
	other, ok := pathID(c, "userId")
	if !ok {
		return
	}
	caller, _ := middlewares.CurrentUser(c)

	messages, err := ctl.messages.Conversation(c.Request.Context(), caller, other)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
