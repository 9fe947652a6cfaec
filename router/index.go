package router

import (
	"cinema_scheduler/handler"
	"cinema_scheduler/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", handler.GetMovieById)
	movie.Get("/:movieId/screenings", handler.GetScreeningsByMovie)

	room := v1.Group("/room", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId/screenings", handler.GetScreeningsByRoomAndDate)

	screening := v1.Group("/screening", logger.New())
	screening.Get("/", handler.GetScreenings)
	screening.Post("/", validate.CreateScreening(), handler.CreateScreening)
	screening.Post("/batch", validate.CreateScreeningBatch(), handler.CreateScreeningBatch)
	screening.Post("/generate-week", validate.GenerateWeek(), handler.GenerateWeekSchedule)
	screening.Put("/:screeningId", validate.EditScreening("screeningId"), handler.EditScreening)
	screening.Delete("/week", handler.ClearWeek)
	screening.Delete("/:screeningId", validate.DeleteScreening("screeningId"), handler.DeleteScreening)
	screening.Delete("/", validate.DeleteBatch(), handler.DeleteScreeningBatch)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/day", handler.GetDayStats)
	statistic.Get("/week", handler.GetWeekStats)
	statistic.Get("/room/:roomId", handler.GetRoomStats)

	ws := v1.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/schedule/:date", websocket.New(handler.ScheduleWebsocket))
}
