package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/vicdevman/portfolio-api/internal/api/http"
	"github.com/vicdevman/portfolio-api/internal/apperr"
	"github.com/vicdevman/portfolio-api/internal/chat/domain"
)

// Replier produces the assistant reply for a conversation.
type Replier interface {
	Reply(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

type Handler struct {
	chat Replier
}

func New(chat Replier) *Handler {
	return &Handler{chat: chat}
}

// Register attaches the chat route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.postChat)
}

type chatReq struct {
	Messages []domain.ChatMessage `json:"messages" binding:"required,dive"`
}

type chatResp struct {
	Message string `json:"message"`
}

func (h *Handler) postChat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteError(c, "chat.post", apperr.InvalidRequest("Invalid request format"))
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		httpapi.WriteError(c, "chat.post", err)
		return
	}

	c.JSON(http.StatusOK, chatResp{Message: reply})
}
