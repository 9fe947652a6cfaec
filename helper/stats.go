package helper

import (
	"math"
	"sort"

	"cinema_scheduler/model"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortByStartTime(screenings []model.Screening) []model.Screening {
	sorted := make([]model.Screening, len(screenings))
	copy(sorted, screenings)
	// "HH:MM" luôn zero-pad nên so sánh chuỗi là so sánh thời gian
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}

// deadTimeFor cộng khoảng trống trước suất đầu, giữa các suất và sau suất
// cuối cho một phòng đã sắp theo giờ bắt đầu
func deadTimeFor(sorted []model.Screening) int {
	deadTime := 0
	lastEnd := DayStartMinutes
	for _, s := range sorted {
		if start := TimeToMinutes(s.StartTime); start > lastEnd {
			deadTime += start - lastEnd
		}
		lastEnd = TimeToMinutes(s.EndTime)
	}
	if lastEnd < DayEndMinutes {
		deadTime += DayEndMinutes - lastEnd
	}
	return deadTime
}

// CalculateDayStats gộp thống kê của mọi phòng trong một ngày: phần trăm sử
// dụng, tổng thời gian chết, số suất và sức chứa ước tính
func CalculateDayStats(date string, screenings []model.Screening, rooms []model.Room) model.DayStats {
	dayScreenings := []model.Screening{}
	for _, s := range screenings {
		if s.Date == date {
			dayScreenings = append(dayScreenings, s)
		}
	}

	totalUsedMinutes := 0
	totalDeadTime := 0
	totalCapacity := 0

	for _, room := range rooms {
		roomScreenings := []model.Screening{}
		for _, s := range dayScreenings {
			if s.RoomId == room.ID {
				roomScreenings = append(roomScreenings, s)
			}
		}
		if len(roomScreenings) == 0 {
			totalDeadTime += AvailableMinutesPerDay
			continue
		}

		sorted := sortByStartTime(roomScreenings)
		for _, s := range sorted {
			totalUsedMinutes += TimeToMinutes(s.EndTime) - TimeToMinutes(s.StartTime)
			totalCapacity += room.Seats
		}
		totalDeadTime += deadTimeFor(sorted)
	}

	usagePercentage := 0.0
	if totalAvailable := AvailableMinutesPerDay * len(rooms); totalAvailable > 0 {
		usagePercentage = float64(totalUsedMinutes) / float64(totalAvailable) * 100
	}

	return model.DayStats{
		Date:              date,
		UsagePercentage:   round2(usagePercentage),
		TotalDeadTime:     totalDeadTime,
		ScheduledShows:    len(dayScreenings),
		EstimatedCapacity: totalCapacity,
	}
}

// CalculateRoomStats tính cùng các chỉ số nhưng giới hạn một phòng
func CalculateRoomStats(roomId, roomName, date string, screenings []model.Screening) model.RoomStats {
	roomScreenings := []model.Screening{}
	for _, s := range screenings {
		if s.RoomId == roomId && s.Date == date {
			roomScreenings = append(roomScreenings, s)
		}
	}

	usedMinutes := 0
	deadTime := 0
	if len(roomScreenings) == 0 {
		deadTime = AvailableMinutesPerDay
	} else {
		sorted := sortByStartTime(roomScreenings)
		for _, s := range sorted {
			usedMinutes += TimeToMinutes(s.EndTime) - TimeToMinutes(s.StartTime)
		}
		deadTime = deadTimeFor(sorted)
	}

	return model.RoomStats{
		RoomId:          roomId,
		RoomName:        roomName,
		UsagePercentage: round2(float64(usedMinutes) / float64(AvailableMinutesPerDay) * 100),
		TotalDeadTime:   deadTime,
		ScheduledShows:  len(roomScreenings),
	}
}
