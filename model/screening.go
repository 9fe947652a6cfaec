package model

import "time"

// Screening là một suất chiếu: một phim, một phòng, một ngày, một giờ bắt đầu.
// EndTime đã bao gồm thời gian dọn phòng nên hai suất có thể nối đuôi nhau
// (EndTime của suất trước == StartTime của suất sau).
type Screening struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	MovieId   string    `gorm:"size:16;not null;index" json:"movieId"`
	RoomId    string    `gorm:"size:16;not null;index:idx_screenings_room_date" json:"roomId"`
	Date      string    `gorm:"size:10;not null;index:idx_screenings_room_date" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`
	Status    string    `gorm:"size:10;not null;default:scheduled" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidationError là một vi phạm quy tắc lập lịch, kèm field gây lỗi
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type CreateScreeningInput struct {
	MovieId   string `json:"movieId" validate:"required"`
	RoomId    string `json:"roomId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
}

type CreateScreeningBatchInput struct {
	Screenings []CreateScreeningInput `json:"screenings" validate:"required,min=1,dive"`
}

type UpdateScreeningInput struct {
	MovieId   *string `json:"movieId"`
	RoomId    *string `json:"roomId"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" validate:"omitempty,datetime=15:04"`
}

type GenerateWeekInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Seed *int64 `json:"seed"`
}

type ArrayIds struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
