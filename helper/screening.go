package helper

import (
	"fmt"

	"cinema_scheduler/model"
)

// Khung giờ hoạt động của rạp, tính theo phút từ nửa đêm
const (
	DayStartMinutes        = 10 * 60                         // 10:00
	DayEndMinutes          = 23*60 + 59                      // 23:59
	AvailableMinutesPerDay = DayEndMinutes - DayStartMinutes // 839
)

const (
	cleanupLargeMin   = 20
	cleanupDefaultMin = 15
)

// CleanupMinutes: phòng LARGE cần 20 phút dọn, còn lại 15 phút
func CleanupMinutes(size model.RoomSize) int {
	if size == model.RoomLarge {
		return cleanupLargeMin
	}
	return cleanupDefaultMin
}

// CalculateEndTime = giờ bắt đầu + thời lượng phim + thời gian dọn phòng
func CalculateEndTime(startTime string, runtimeMin int, size model.RoomSize) string {
	return MinutesToTime(TimeToMinutes(startTime) + runtimeMin + CleanupMinutes(size))
}

// CanDeleteScreening chặn xoá suất PREMIERE khi ngày đó chỉ còn <= 2 suất
// của phim. Quy tắc tối thiểu 2 suất chỉ kiểm tra lúc XOÁ, không kiểm tra
// lúc tạo, để có thể thêm suất đầu tiên.
func CanDeleteScreening(target model.Screening, movie *model.Movie, all []model.Screening) error {
	if movie == nil || movie.Type != model.MoviePremiere {
		return nil
	}
	count := 0
	for _, s := range all {
		if s.MovieId == target.MovieId && s.Date == target.Date {
			count++
		}
	}
	if count <= 2 {
		return fmt.Errorf("PREMIERE movies must keep at least 2 screenings on release day; %q has %d scheduled on %s", movie.Title, count, target.Date)
	}
	return nil
}

// PremiereAdvisory trả cảnh báo khi đây là suất PREMIERE đầu tiên của phim
// trong ngày. Chỉ là thông tin cho caller, không chặn thao tác.
func PremiereAdvisory(input model.CreateScreeningInput, movie model.Movie, existing []model.Screening) string {
	if movie.Type != model.MoviePremiere {
		return ""
	}
	for _, s := range existing {
		if s.MovieId == movie.ID && s.Date == input.Date {
			return ""
		}
	}
	return fmt.Sprintf("first PREMIERE screening of %q on %s: at least 2 screenings are required that day", movie.Title, input.Date)
}
