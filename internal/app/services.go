package app

import (
	"github.com/adanyl0v/go-task-services/internal/config"
	v1 "github.com/adanyl0v/go-task-services/internal/delivery/http/v1"
	"github.com/adanyl0v/go-task-services/internal/limiter"
	"github.com/adanyl0v/go-task-services/internal/mailer"
	"github.com/adanyl0v/go-task-services/internal/services"
	"github.com/adanyl0v/go-task-services/internal/storage"
	"github.com/adanyl0v/go-task-services/internal/storage/memory"
	"github.com/adanyl0v/go-task-services/internal/storage/postgres"
)

func mustNewHandler(service Service) v1.Handler {
	cfg := config.Global()

	if service.needsTokens() {
		err := cfg.RequireJWTSecret()
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("invalid jwt config")
			panic(err)
		}
	}

	var s v1.Services
	switch service {
	case ServiceUsers:
		s.Tokens = newTokenService()
		s.Auth = services.NewAuthService(
			globalLogger,
			newUserStore(),
			s.Tokens,
			newLoginLimiter(),
			nil,
		)
	case ServiceTasks:
		s.Tokens = newTokenService()
		s.Tasks = services.NewTaskService(globalLogger, newTaskStore())
	case ServiceNotifications:
		s.Notifications = services.NewNotificationService(globalLogger, mustNewMailer())
	}
	return v1.New(globalLogger, s)
}

func newTokenService() services.TokenService {
	jwtCfg := config.Global().JWT
	return services.NewTokenService(
		[]byte(jwtCfg.Secret),
		jwtCfg.Issuer,
		nil,
	)
}

func newUserStore() storage.UserStore {
	if config.Global().Storage == config.StoragePostgres {
		return postgres.NewUserStore(globalLogger, globalPostgresPool)
	}
	return memory.NewUserStore()
}

func newTaskStore() storage.TaskStore {
	if config.Global().Storage == config.StoragePostgres {
		return postgres.NewTaskStore(globalLogger, globalPostgresPool)
	}
	return memory.NewTaskStore()
}

func newLoginLimiter() limiter.LoginLimiter {
	if globalRedisClient == nil {
		return limiter.NewNoop()
	}
	loginCfg := config.Global().Login
	return limiter.NewRedis(globalRedisClient, loginCfg.MaxAttempts, loginCfg.Lockout)
}

func mustNewMailer() services.Mailer {
	smtpCfg := config.Global().SMTP
	m, err := mailer.NewSMTPMailer(mailer.Config{
		Host:     smtpCfg.Host,
		Port:     smtpCfg.Port,
		Username: smtpCfg.Username,
		Password: smtpCfg.Password,
		From:     smtpCfg.From,
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create mailer")
		panic(err)
	}
	return m
}
