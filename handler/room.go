package handler

import (
	"errors"

	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
)

func GetRooms(c *fiber.Ctx) error {
	var rooms []model.Room
	if err := database.DB.Order("id").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ROOM_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetScreeningsByRoomAndDate trả lịch một phòng trong một ngày, sắp theo giờ bắt đầu
func GetScreeningsByRoomAndDate(c *fiber.Ctx) error {
	roomId := c.Params("roomId")
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, errors.New("query param date must be YYYY-MM-DD"))
	}

	var room model.Room
	if err := database.DB.Where("id = ?", roomId).First(&room).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err, "roomId")
	}

	screenings, err := screeningStore.ByRoomAndDate(roomId, date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screenings)
}
