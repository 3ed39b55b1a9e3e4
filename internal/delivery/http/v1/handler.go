package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleNotify(c *gin.Context)

	HandleHealth(c *gin.Context)
}

// Services groups the dependencies of the handler. A process only fills in
// the services its routes need.
type Services struct {
	Auth          services.AuthService
	Tokens        services.TokenService
	Tasks         services.TaskService
	Notifications services.NotificationService
}

type handlerImpl struct {
	logger        zerolog.Logger
	auth          services.AuthService
	tokens        services.TokenService
	tasks         services.TaskService
	notifications services.NotificationService
}

func New(logger zerolog.Logger, s Services) Handler {
	return &handlerImpl{
		logger:        logger,
		auth:          s.Auth,
		tokens:        s.Tokens,
		tasks:         s.Tasks,
		notifications: s.Notifications,
	}
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
