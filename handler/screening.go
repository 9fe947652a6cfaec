package handler

import (
	"errors"
	"fmt"
	"time"

	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/helper"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetScreenings(c *fiber.Ctx) error {
	screenings, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SCREENING_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screenings)
}

func CreateScreening(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	movie, ok := c.Locals("movie").(model.Movie)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	room, ok := c.Locals("room").(model.Room)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	existing, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	violations := helper.ValidateScreening(input, movie, room, existing)
	if len(violations) > 0 {
		return utils.ValidationFailedResponse(c, constants.VALIDATION_FAILED, violations)
	}

	// cảnh báo suất PREMIERE đầu ngày: trả kèm response, không chặn
	advisory := helper.PremiereAdvisory(input, movie, existing)

	screening := model.Screening{
		MovieId:   input.MovieId,
		RoomId:    input.RoomId,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   helper.CalculateEndTime(input.StartTime, movie.RuntimeMin, room.Size),
		Status:    constants.SCREENING_SCHEDULED,
	}
	if err := screeningStore.Add(&screening); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	FlushStatsCache()
	PublishScheduleUpdate(screening.Date)

	data := fiber.Map{"screening": screening}
	if advisory != "" {
		data["advisory"] = advisory
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, data)
}

// CreateScreeningBatch là thao tác tất-cả-hoặc-không: một suất không hợp lệ
// thì cả lô bị từ chối kèm đầy đủ vi phạm của từng suất
func CreateScreeningBatch(c *fiber.Ctx) error {
	input, ok := c.Locals("batchInput").(model.CreateScreeningBatchInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	movies, rooms, err := loadCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	existing, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	accepted := []model.Screening{}
	allViolations := []fiber.Map{}
	for i, item := range input.Screenings {
		movie, okM := movies[item.MovieId]
		if !okM {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND,
				fmt.Errorf("screening %d references unknown movie %s", i, item.MovieId), "movieId")
		}
		room, okR := rooms[item.RoomId]
		if !okR {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND,
				fmt.Errorf("screening %d references unknown room %s", i, item.RoomId), "roomId")
		}

		violations := helper.ValidateScreening(item, movie, room, append(existing, accepted...))
		if len(violations) > 0 {
			allViolations = append(allViolations, fiber.Map{"index": i, "violations": violations})
			continue
		}
		accepted = append(accepted, model.Screening{
			MovieId:   item.MovieId,
			RoomId:    item.RoomId,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   helper.CalculateEndTime(item.StartTime, movie.RuntimeMin, room.Size),
			Status:    constants.SCREENING_SCHEDULED,
		})
	}
	if len(allViolations) > 0 {
		return utils.ValidationFailedResponse(c, constants.VALIDATION_FAILED, allViolations)
	}

	stored, err := screeningStore.AddBatch(accepted)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	FlushStatsCache()
	for _, date := range affectedDates(stored) {
		PublishScheduleUpdate(date)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, stored)
}

func EditScreening(c *fiber.Ctx) error {
	screening, ok := c.Locals("screening").(model.Screening)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	previousDate := screening.Date
	copier.Copy(&screening, &input)

	var movie model.Movie
	if err := database.DB.Where("id = ?", screening.MovieId).First(&movie).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
	}
	var room model.Room
	if err := database.DB.Where("id = ?", screening.RoomId).First(&room).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err, "roomId")
	}

	all, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	// suất đang sửa không được tính vào kiểm tra chồng lấn
	others := []model.Screening{}
	for _, s := range all {
		if s.ID != screening.ID {
			others = append(others, s)
		}
	}

	candidate := model.CreateScreeningInput{
		MovieId:   screening.MovieId,
		RoomId:    screening.RoomId,
		Date:      screening.Date,
		StartTime: screening.StartTime,
	}
	violations := helper.ValidateScreening(candidate, movie, room, others)
	if len(violations) > 0 {
		return utils.ValidationFailedResponse(c, constants.VALIDATION_FAILED, violations)
	}

	screening.EndTime = helper.CalculateEndTime(screening.StartTime, movie.RuntimeMin, room.Size)
	if err := screeningStore.Update(screening.ID, &screening); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	FlushStatsCache()
	PublishScheduleUpdate(previousDate)
	if screening.Date != previousDate {
		PublishScheduleUpdate(screening.Date)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screening)
}

func DeleteScreening(c *fiber.Ctx) error {
	screening, ok := c.Locals("screening").(model.Screening)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	movie, ok := c.Locals("movie").(model.Movie)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	all, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := helper.CanDeleteScreening(screening, &movie, all); err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_DELETE, err, "screeningId")
	}

	if err := screeningStore.Delete(screening.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	FlushStatsCache()
	PublishScheduleUpdate(screening.Date)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": screening.ID})
}

func DeleteScreeningBatch(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayIds)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	all, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	drop := make(map[string]bool, len(input.IDs))
	for _, id := range input.IDs {
		drop[id] = true
	}
	affected := []model.Screening{}
	for _, s := range all {
		if drop[s.ID] {
			affected = append(affected, s)
		}
	}

	if err := screeningStore.DeleteBatch(input.IDs); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	FlushStatsCache()
	for _, date := range affectedDates(affected) {
		PublishScheduleUpdate(date)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(affected)})
}

// ClearWeek xoá mọi suất của tuần chứa ?date= trong một lô
func ClearWeek(c *fiber.Ctx) error {
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, errors.New("query param date must be YYYY-MM-DD"))
	}

	weekDates := helper.WeekDates(date)
	inWeek := make(map[string]bool, 7)
	for _, d := range weekDates {
		inWeek[d] = true
	}

	all, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	ids := []string{}
	for _, s := range all {
		if inWeek[s.Date] {
			ids = append(ids, s.ID)
		}
	}
	if len(ids) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": 0})
	}

	if err := screeningStore.DeleteBatch(ids); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	FlushStatsCache()
	for _, d := range weekDates {
		PublishScheduleUpdate(d)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(ids)})
}

// GenerateWeekSchedule lấp tuần chứa ngày yêu cầu bằng suất ngẫu nhiên hợp
// lệ rồi commit cả lô. Sinh được 0 suất là kết quả bình thường, không phải lỗi.
func GenerateWeekSchedule(c *fiber.Ctx) error {
	input, ok := c.Locals("generateInput").(model.GenerateWeekInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var movies []model.Movie
	if err := database.DB.Order("id").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_GENERATE, err)
	}
	var rooms []model.Room
	if err := database.DB.Order("id").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_GENERATE, err)
	}

	existing, err := screeningStore.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_GENERATE, err)
	}

	seed := time.Now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}
	generator := helper.NewWeekGenerator(movies, rooms, seed)
	created := generator.FillWeek(helper.WeekDates(input.Date), existing)
	if len(created) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"created":    0,
			"screenings": []model.Screening{},
		})
	}

	stored, err := screeningStore.AddBatch(created)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_GENERATE, err)
	}

	FlushStatsCache()
	for _, date := range affectedDates(stored) {
		PublishScheduleUpdate(date)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created":    len(stored),
		"screenings": stored,
	})
}

func loadCatalog() (map[string]model.Movie, map[string]model.Room, error) {
	var movies []model.Movie
	if err := database.DB.Find(&movies).Error; err != nil {
		return nil, nil, err
	}
	var rooms []model.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		return nil, nil, err
	}
	movieMap := make(map[string]model.Movie, len(movies))
	for _, m := range movies {
		movieMap[m.ID] = m
	}
	roomMap := make(map[string]model.Room, len(rooms))
	for _, r := range rooms {
		roomMap[r.ID] = r
	}
	return movieMap, roomMap, nil
}

func affectedDates(screenings []model.Screening) []string {
	seen := map[string]bool{}
	dates := []string{}
	for _, s := range screenings {
		if !seen[s.Date] {
			seen[s.Date] = true
			dates = append(dates, s.Date)
		}
	}
	return dates
}
