package main

import "github.com/adanyl0v/go-task-services/internal/app"

func main() {
	app.InitDefaultLogger(app.ServiceUsers)
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustConnectRedis()
	defer app.DisconnectRedis()

	app.MustListenAndServeHTTP(app.ServiceUsers)
}
