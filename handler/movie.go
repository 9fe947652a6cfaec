package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMovies(c *fiber.Ctx) error {
	var movies []model.Movie
	if err := database.DB.Order("id").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MOVIE_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

func GetMovieById(c *fiber.Ctx) error {
	movieId := c.Params("movieId")
	var movie model.Movie
	if err := database.DB.Where("id = ? OR slug = ?", movieId, movieId).First(&movie).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err, "movieId")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func GetScreeningsByMovie(c *fiber.Ctx) error {
	movieId := c.Params("movieId")
	var movie model.Movie
	if err := database.DB.Where("id = ?", movieId).First(&movie).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err, "movieId")
	}

	screenings, err := screeningStore.ByMovie(movieId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screenings)
}
