package v1

import "github.com/gin-gonic/gin"

func RegisterUsersRoutes(router gin.IRouter, h Handler) {
	router.POST("/register", h.HandleRegister)
	router.POST("/login", h.HandleLogin)
}

func RegisterTasksRoutes(router gin.IRouter, h Handler) {
	tasksRouter := router.Group("/tasks", h.HandleAuthMiddleware)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}

func RegisterNotificationsRoutes(router gin.IRouter, h Handler) {
	router.POST("/notify", h.HandleNotify)
}

func RegisterHealthRoutes(router gin.IRouter, h Handler) {
	router.GET("/healthz", h.HandleHealth)
}
