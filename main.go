package main

import (
	"os"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/config"
	"Gin_postgres_library_management/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	application.Log.Infof("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		application.Log.Fatalf("server: %v", err)
	}
}
