package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/vicdevman/portfolio-api/internal/api/http"
	"github.com/vicdevman/portfolio-api/internal/apperr"
	"github.com/vicdevman/portfolio-api/internal/contact/domain"
)

type Submitter interface {
	Submit(ctx context.Context, sub domain.Submission) error
}

type Handler struct {
	contact Submitter
}

func New(contact Submitter) *Handler {
	return &Handler{contact: contact}
}

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.postContact)
}

func (h *Handler) postContact(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		httpapi.WriteError(c, "contact.post", apperr.InvalidRequest("Invalid request format"))
		return
	}

	if err := h.contact.Submit(c.Request.Context(), sub); err != nil {
		httpapi.WriteError(c, "contact.post", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}
