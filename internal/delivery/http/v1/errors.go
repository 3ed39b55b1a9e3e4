package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestBody = errors.New("invalid request body")

// Messages returned to clients.
const (
	msgAuthorizationMissing = "authorization token required"
	msgForbidden            = "invalid or expired token"
	msgTaskNotFound         = "Task not found"
	msgUsernameTaken        = "Username already exists"
	msgRegistered           = "User registered successfully"
	msgRegistrationFailed   = "Registration failed"
	msgAuthenticationFailed = "Authentication failed"
	msgTooManyAttempts      = "too many login attempts, try again later"
	msgLoginFailed          = "Login failed"
	msgNotificationSent     = "Notification sent successfully"
	msgNotificationFailed   = "Failed to send notification"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newForbiddenError(message string) apiError {
	return newAPIError(http.StatusForbidden, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newTooManyRequestsError(message string) apiError {
	return newAPIError(http.StatusTooManyRequests, message)
}

func newInternalError(message string) apiError {
	return newAPIError(http.StatusInternalServerError, message)
}
