package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-services/internal/limiter"
	"github.com/adanyl0v/go-task-services/internal/services"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(err.Error()))
		return
	}
	h.logger.Info().
		Str("username", req.Username).
		Msg("register request")

	_, err = h.auth.Register(c, services.RegisterParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			abort(c, newBadRequestError(msgUsernameTaken))
		case errors.Is(err, services.ErrValidation):
			abort(c, newBadRequestError(err.Error()))
		default:
			abort(c, newInternalError(msgRegistrationFailed))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgRegistered})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	result, err := h.auth.Login(c, services.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			// Login failures carry a message rather than an error key.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgAuthenticationFailed})
		case errors.Is(err, limiter.ErrTooManyAttempts):
			abort(c, newTooManyRequestsError(msgTooManyAttempts))
		default:
			abort(c, newInternalError(msgLoginFailed))
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: result.Token})
}
