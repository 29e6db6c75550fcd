package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOrCreateMatchChat returns the chat for a match, creating it on first
// access.
func (h *HandlerBundle) GetOrCreateMatchChat(c *gin.Context) {
	chat, created, err := h.Chats.GetOrCreateMatchChat(c.Request.Context(), callerID(c), c.Param("matchId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, chat)
}

// ListMyChats returns every chat the caller participates in.
func (h *HandlerBundle) ListMyChats(c *gin.Context) {
	views, err := h.Chats.ListUserChats(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SendChatMessage appends a message to a chat the caller belongs to.
func (h *HandlerBundle) SendChatMessage(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Chats.SendMessage(c.Request.Context(), callerID(c), c.Param("chatId"), input.Text); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
