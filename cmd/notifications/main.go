package main

import "github.com/adanyl0v/go-task-services/internal/app"

func main() {
	app.InitDefaultLogger(app.ServiceNotifications)
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustListenAndServeHTTP(app.ServiceNotifications)
}
