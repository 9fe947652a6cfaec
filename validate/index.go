package validate

import (
	"errors"
	"fmt"

	"cinema_scheduler/constants"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func DeleteBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayIds

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

		if len(input.IDs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_INVALID, errors.New("ids must not be empty"))
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}
