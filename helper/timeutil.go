package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes đổi "HH:MM" sang số phút từ nửa đêm. Caller đảm bảo định dạng đúng.
func TimeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DayName trả tên thứ trong tuần của ngày YYYY-MM-DD
func DayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// IsWeekendDate: thứ Sáu, thứ Bảy hoặc Chủ nhật
func IsWeekendDate(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday || wd == time.Sunday
}

// MondayOf trả thứ Hai của tuần chứa date. Chủ nhật thuộc về tuần bắt đầu
// từ thứ Hai TRƯỚC đó, không phải tuần sau.
func MondayOf(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

// WeekDates trả 7 ngày liên tiếp của tuần chứa date, thứ Hai đứng đầu
func WeekDates(date string) []string {
	monday := MondayOf(date)
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, monday.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}
