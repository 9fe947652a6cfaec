package store

import (
	"fmt"

	"cinema_scheduler/model"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore tạo ScreeningStore trên GORM, dùng trong production
func NewGormStore(db *gorm.DB) ScreeningStore {
	return &gormStore{db: db}
}

func (s *gormStore) All() ([]model.Screening, error) {
	var screenings []model.Screening
	if err := s.db.Find(&screenings).Error; err != nil {
		return nil, fmt.Errorf("failed to load screenings: %w", err)
	}
	return screenings, nil
}

func (s *gormStore) ByMovie(movieId string) ([]model.Screening, error) {
	var screenings []model.Screening
	if err := s.db.Where("movie_id = ?", movieId).Find(&screenings).Error; err != nil {
		return nil, fmt.Errorf("failed to load screenings for movie %s: %w", movieId, err)
	}
	return screenings, nil
}

func (s *gormStore) ByRoomAndDate(roomId, date string) ([]model.Screening, error) {
	var screenings []model.Screening
	err := s.db.Where("room_id = ? AND date = ?", roomId, date).
		Order("start_time asc").
		Find(&screenings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load screenings for room %s on %s: %w", roomId, date, err)
	}
	return screenings, nil
}

func (s *gormStore) Add(screening *model.Screening) error {
	if screening.ID == "" {
		screening.ID = NewScreeningID()
	}
	if err := s.db.Create(screening).Error; err != nil {
		return fmt.Errorf("failed to create screening: %w", err)
	}
	return nil
}

// AddBatch ghi cả lô trong một transaction: hoặc tất cả hoặc không gì cả
func (s *gormStore) AddBatch(screenings []model.Screening) ([]model.Screening, error) {
	for i := range screenings {
		if screenings[i].ID == "" {
			screenings[i].ID = NewScreeningID()
		}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&screenings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create screening batch: %w", err)
	}
	return screenings, nil
}

func (s *gormStore) Update(id string, screening *model.Screening) error {
	screening.ID = id
	result := s.db.Model(&model.Screening{}).Where("id = ?", id).Updates(screening)
	if result.Error != nil {
		return fmt.Errorf("failed to update screening %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrScreeningNotFound
	}
	return nil
}

func (s *gormStore) Delete(id string) error {
	result := s.db.Delete(&model.Screening{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete screening %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrScreeningNotFound
	}
	return nil
}

func (s *gormStore) DeleteBatch(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.Delete(&model.Screening{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete screening batch: %w", err)
	}
	return nil
}
