package utils

import "time"

// IsValidDate kiểm tra chuỗi YYYY-MM-DD
func IsValidDate(dateStr string) bool {
	if len(dateStr) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
