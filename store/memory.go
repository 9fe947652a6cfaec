package store

import (
	"sort"
	"sync"

	"cinema_scheduler/model"
)

// MemoryStore là bản in-memory của ScreeningStore, dùng trong test
type MemoryStore struct {
	mu         sync.Mutex
	screenings []model.Screening
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) All() ([]model.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Screening, len(s.screenings))
	copy(out, s.screenings)
	return out, nil
}

func (s *MemoryStore) ByMovie(movieId string) ([]model.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Screening{}
	for _, sc := range s.screenings {
		if sc.MovieId == movieId {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *MemoryStore) ByRoomAndDate(roomId, date string) ([]model.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Screening{}
	for _, sc := range s.screenings {
		if sc.RoomId == roomId && sc.Date == date {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (s *MemoryStore) Add(screening *model.Screening) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if screening.ID == "" {
		screening.ID = NewScreeningID()
	}
	s.screenings = append(s.screenings, *screening)
	return nil
}

func (s *MemoryStore) AddBatch(screenings []model.Screening) ([]model.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range screenings {
		if screenings[i].ID == "" {
			screenings[i].ID = NewScreeningID()
		}
	}
	s.screenings = append(s.screenings, screenings...)
	return screenings, nil
}

func (s *MemoryStore) Update(id string, screening *model.Screening) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.screenings {
		if s.screenings[i].ID == id {
			screening.ID = id
			s.screenings[i] = *screening
			return nil
		}
	}
	return ErrScreeningNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.screenings {
		if s.screenings[i].ID == id {
			s.screenings = append(s.screenings[:i], s.screenings[i+1:]...)
			return nil
		}
	}
	return ErrScreeningNotFound
}

func (s *MemoryStore) DeleteBatch(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.screenings[:0]
	for _, sc := range s.screenings {
		if !drop[sc.ID] {
			kept = append(kept, sc)
		}
	}
	s.screenings = kept
	return nil
}
