package app

// Service names one of the processes built from this module.
type Service string

const (
	ServiceUsers         Service = "users"
	ServiceTasks         Service = "tasks"
	ServiceNotifications Service = "notifications"
)

func (s Service) defaultPort() string {
	switch s {
	case ServiceUsers:
		return "3000"
	case ServiceTasks:
		return "3001"
	case ServiceNotifications:
		return "3002"
	default:
		return "8080"
	}
}

// needsTokens reports whether the service signs or verifies tokens.
func (s Service) needsTokens() bool {
	return s == ServiceUsers || s == ServiceTasks
}
