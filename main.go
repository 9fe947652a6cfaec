package main

import (
	"log"

	"cinema_scheduler/config"
	"cinema_scheduler/database"
	"cinema_scheduler/handler"
	"cinema_scheduler/helper"
	"cinema_scheduler/router"
	"cinema_scheduler/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	database.ConnectDB()
	handler.InitScreeningStore(store.NewGormStore(database.DB))

	helper.StartScreeningSweeper()
	defer helper.StopScreeningSweeper()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigWithDefault("PORT", "8002")))
}
