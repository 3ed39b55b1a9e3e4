package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-services/internal/config"
	v1 "github.com/adanyl0v/go-task-services/internal/delivery/http/v1"
)

func MustListenAndServeHTTP(service Service) {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP
	port := httpCfg.Port
	if port == "" {
		port = service.defaultPort()
	}

	router := gin.New()
	router.Use(v1.RequestID())
	router.Use(v1.RequestLogger(globalLogger))
	router.Use(gin.Recovery())
	registerRoutes(router, service)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// kill (no params) sends SIGTERM, kill -2 sends SIGINT.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter, service Service) {
	h := mustNewHandler(service)
	v1.RegisterHealthRoutes(router, h)

	switch service {
	case ServiceUsers:
		v1.RegisterUsersRoutes(router, h)
	case ServiceTasks:
		v1.RegisterTasksRoutes(router, h)
	case ServiceNotifications:
		v1.RegisterNotificationsRoutes(router, h)
	}
}
