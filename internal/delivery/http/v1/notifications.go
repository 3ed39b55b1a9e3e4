package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/services"
)

type notifyRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

func (h *handlerImpl) HandleNotify(c *gin.Context) {
	var req notifyRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	err = h.notifications.Notify(c, models.Notification{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			abort(c, newBadRequestError(err.Error()))
		default:
			abort(c, newInternalError(msgNotificationFailed))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgNotificationSent})
}
