package main

import "github.com/adanyl0v/go-task-services/internal/app"

func main() {
	app.InitDefaultLogger(app.ServiceTasks)
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustListenAndServeHTTP(app.ServiceTasks)
}
