package helper

import (
	"fmt"

	"cinema_scheduler/model"
)

// ValidateScreening kiểm tra một suất chiếu dự kiến với toàn bộ quy tắc lập
// lịch. Mọi quy tắc đều được kiểm, không dừng ở vi phạm đầu tiên; danh sách
// rỗng nghĩa là hợp lệ.
//
// Quy tắc:
//  1. Giờ bắt đầu trong khung 10:00 - 23:59
//  2. Giờ kết thúc (gồm thời gian dọn phòng) không vượt 23:59
//  3. Không chồng suất trong cùng phòng cùng ngày
//  4. SPECIAL chỉ chiếu thứ Sáu - Chủ nhật
//  5. PREMIERE: demandScore >= 70, suất sớm nhất trong ngày trước 14:00
//  6. Phim dài hơn 150 phút không vào phòng SMALL
func ValidateScreening(input model.CreateScreeningInput, movie model.Movie, room model.Room, existing []model.Screening) []model.ValidationError {
	errors := []model.ValidationError{}

	startMinutes := TimeToMinutes(input.StartTime)
	if startMinutes < DayStartMinutes || startMinutes > DayEndMinutes {
		errors = append(errors, model.ValidationError{
			Message: fmt.Sprintf("start time must be between 10:00 and 23:59, got %s", input.StartTime),
			Field:   "startTime",
		})
	}

	totalDuration := movie.RuntimeMin + CleanupMinutes(room.Size)
	endMinutes := startMinutes + totalDuration
	if endMinutes > DayEndMinutes {
		errors = append(errors, model.ValidationError{
			Message: fmt.Sprintf(
				"screening would end at %s, past closing time 23:59; with %d min runtime and %d min cleanup the latest allowed start is %s",
				MinutesToTime(endMinutes), movie.RuntimeMin, CleanupMinutes(room.Size), MinutesToTime(DayEndMinutes-totalDuration)),
			Field: "startTime",
		})
	}

	// EndTime đã gồm thời gian dọn phòng nên hai suất chạm đầu cuối nhau là hợp lệ
	for _, s := range existing {
		if s.RoomId != input.RoomId || s.Date != input.Date {
			continue
		}
		sStart := TimeToMinutes(s.StartTime)
		sEnd := TimeToMinutes(s.EndTime)
		if startMinutes < sEnd && endMinutes > sStart {
			errors = append(errors, model.ValidationError{
				Message: fmt.Sprintf(
					"time conflict in this room: existing screening runs %s - %s, proposed screening runs %s - %s",
					s.StartTime, s.EndTime, input.StartTime, MinutesToTime(endMinutes)),
				Field: "startTime",
			})
			break
		}
	}

	if movie.Type == model.MovieSpecial && !IsWeekendDate(input.Date) {
		errors = append(errors, model.ValidationError{
			Message: fmt.Sprintf("SPECIAL movies may only be scheduled on Friday, Saturday or Sunday; %s is a %s", input.Date, DayName(input.Date)),
			Field:   "date",
		})
	}

	if movie.Type == model.MoviePremiere {
		if movie.DemandScore < 70 {
			errors = append(errors, model.ValidationError{
				Message: fmt.Sprintf("PREMIERE movies require a demand score of at least 70, %q has %d", movie.Title, movie.DemandScore),
				Field:   "movieId",
			})
		}

		// Suất sớm nhất trong ngày phải bắt đầu trước 14:00. Quy tắc tối thiểu
		// 2 suất chỉ được kiểm khi xoá (xem CanDeleteScreening).
		earliest := -1
		for _, s := range existing {
			if s.MovieId != movie.ID || s.Date != input.Date {
				continue
			}
			if m := TimeToMinutes(s.StartTime); earliest < 0 || m < earliest {
				earliest = m
			}
		}
		isFirstShow := earliest < 0 || startMinutes < earliest
		if isFirstShow && startMinutes >= 14*60 {
			errors = append(errors, model.ValidationError{
				Message: fmt.Sprintf("the first PREMIERE screening of the day must start before 14:00, got %s", input.StartTime),
				Field:   "startTime",
			})
		}
	}

	if movie.RuntimeMin > 150 && room.Size == model.RoomSmall {
		errors = append(errors, model.ValidationError{
			Message: fmt.Sprintf("movies longer than 150 minutes cannot play in SMALL rooms; %q runs %d minutes", movie.Title, movie.RuntimeMin),
			Field:   "roomId",
		})
	}

	return errors
}
