package store

import (
	"errors"
	"fmt"
	"time"

	"cinema_scheduler/model"

	"github.com/google/uuid"
)

var ErrScreeningNotFound = errors.New("screening not found")

// ScreeningStore sở hữu collection suất chiếu. Engine không đụng trực tiếp
// vào persistence; mọi thay đổi đi qua interface này và mỗi thao tác (kể cả
// batch) là nguyên tử với caller.
type ScreeningStore interface {
	All() ([]model.Screening, error)
	ByMovie(movieId string) ([]model.Screening, error)
	// ByRoomAndDate trả suất trong một phòng một ngày, sắp theo giờ bắt đầu
	ByRoomAndDate(roomId, date string) ([]model.Screening, error)
	Add(s *model.Screening) error
	AddBatch(screenings []model.Screening) ([]model.Screening, error)
	Update(id string, s *model.Screening) error
	Delete(id string) error
	DeleteBatch(ids []string) error
}

// NewScreeningID sinh id mờ duy nhất theo kiểu timestamp + hậu tố ngẫu nhiên
func NewScreeningID() string {
	return fmt.Sprintf("scr_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
