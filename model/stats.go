package model

// DayStats gộp mọi phòng trong một ngày
type DayStats struct {
	Date              string  `json:"date"`
	UsagePercentage   float64 `json:"usagePercentage"`
	TotalDeadTime     int     `json:"totalDeadTime"`
	ScheduledShows    int     `json:"scheduledShows"`
	EstimatedCapacity int     `json:"estimatedCapacity"`
}

// RoomStats cho một phòng trong một ngày
type RoomStats struct {
	RoomId          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	UsagePercentage float64 `json:"usagePercentage"`
	TotalDeadTime   int     `json:"totalDeadTime"`
	ScheduledShows  int     `json:"scheduledShows"`
}
