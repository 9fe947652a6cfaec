package handler

import (
	"errors"

	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/helper"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

func GetDayStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, errors.New("query param date must be YYYY-MM-DD"))
	}

	if cached, found := statsCache.Get("day:" + date); found {
		return utils.SuccessResponse(c, fiber.StatusOK, cached)
	}

	var rooms []model.Room
	if err := database.DB.Order("id").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ROOM_NOT_FOUND, err)
	}
	screenings, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}

	stats := helper.CalculateDayStats(date, screenings, rooms)
	statsCache.Set("day:"+date, stats, cache.DefaultExpiration)
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetWeekStats trả thống kê 7 ngày của tuần chứa ?date=, thứ Hai đứng đầu
func GetWeekStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, errors.New("query param date must be YYYY-MM-DD"))
	}

	weekDates := helper.WeekDates(date)
	cacheKey := "week:" + weekDates[0]
	if cached, found := statsCache.Get(cacheKey); found {
		return utils.SuccessResponse(c, fiber.StatusOK, cached)
	}

	var rooms []model.Room
	if err := database.DB.Order("id").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ROOM_NOT_FOUND, err)
	}
	screenings, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}

	weekStats := make([]model.DayStats, 0, 7)
	for _, d := range weekDates {
		weekStats = append(weekStats, helper.CalculateDayStats(d, screenings, rooms))
	}
	statsCache.Set(cacheKey, weekStats, cache.DefaultExpiration)
	return utils.SuccessResponse(c, fiber.StatusOK, weekStats)
}

func GetRoomStats(c *fiber.Ctx) error {
	roomId := c.Params("roomId")
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, errors.New("query param date must be YYYY-MM-DD"))
	}

	var room model.Room
	if err := database.DB.Where("id = ?", roomId).First(&room).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err, "roomId")
	}

	screenings, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}
	stats := helper.CalculateRoomStats(room.ID, room.Name, date, screenings)
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
