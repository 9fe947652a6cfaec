package validate

import (
	"fmt"

	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateScreening parse input, kiểm tra định dạng và resolve phim/phòng.
// Thiếu phim hoặc phòng là lỗi cấu trúc, bị chặn trước khi chạy validator
// quy tắc lập lịch.
func CreateScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScreeningInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var movie model.Movie
		if err := database.DB.Where("id = ?", input.MovieId).First(&movie).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
		}
		var room model.Room
		if err := database.DB.Where("id = ?", input.RoomId).First(&room).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err, "roomId")
		}

		c.Locals("input", input)
		c.Locals("movie", movie)
		c.Locals("room", room)
		return c.Next()
	}
}

func CreateScreeningBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScreeningBatchInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("batchInput", input)
		return c.Next()
	}
}

func EditScreening(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		screeningId := c.Params(key)

		var input model.UpdateScreeningInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var screening model.Screening
		if err := database.DB.Where("id = ?", screeningId).First(&screening).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err, "screeningId")
		}

		c.Locals("screening", screening)
		c.Locals("updateInput", input)
		return c.Next()
	}
}

func DeleteScreening(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		screeningId := c.Params(key)

		var screening model.Screening
		if err := database.DB.Where("id = ?", screeningId).First(&screening).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err, "screeningId")
		}

		var movie model.Movie
		if err := database.DB.Where("id = ?", screening.MovieId).First(&movie).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
		}

		c.Locals("screening", screening)
		c.Locals("movie", movie)
		return c.Next()
	}
}

func GenerateWeek() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GenerateWeekInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("generateInput", input)
		return c.Next()
	}
}
