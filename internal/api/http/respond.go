package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vicdevman/portfolio-api/internal/apperr"
	"github.com/vicdevman/portfolio-api/internal/logging"
)

// WriteError renders err as {"error": msg[, "details": ...]} with the status
// of its kind. Errors that are not *apperr.Error are reported as internal.
func WriteError(c *gin.Context, op string, err error) {
	ae := apperr.From(err)
	if !ae.ClientFault() {
		logging.NewLogger(c.Request.Context()).Zap().Error(op,
			zap.String("operation", op),
			zap.String("kind", string(ae.Kind)),
			zap.Int("status", ae.HTTPStatus()),
			zap.Error(ae),
		)
	}

	body := gin.H{"error": ae.Message}
	if ae.Details != nil {
		body["details"] = ae.Details
	}
	c.AbortWithStatusJSON(ae.HTTPStatus(), body)
}
