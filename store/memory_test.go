package store

import (
	"strings"
	"testing"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedScreening(movieId, roomId, date, startTime, endTime string) model.Screening {
	return model.Screening{
		MovieId: movieId, RoomId: roomId, Date: date,
		StartTime: startTime, EndTime: endTime, Status: "scheduled",
	}
}

func TestMemoryStoreAddAssignsId(t *testing.T) {
	s := NewMemoryStore()
	sc := seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05")
	require.NoError(t, s.Add(&sc))
	assert.True(t, strings.HasPrefix(sc.ID, "scr_"))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, sc.ID, all[0].ID)
}

func TestMemoryStoreAddKeepsExistingId(t *testing.T) {
	s := NewMemoryStore()
	sc := seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05")
	sc.ID = "scr_fixed"
	require.NoError(t, s.Add(&sc))
	assert.Equal(t, "scr_fixed", sc.ID)
}

func TestMemoryStoreAddBatch(t *testing.T) {
	s := NewMemoryStore()
	batch := []model.Screening{
		seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05"),
		seedScreening("m2", "S2", "2024-01-15", "13:00", "15:23"),
	}
	saved, err := s.AddBatch(batch)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.NotEmpty(t, saved[1].ID)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)
}

func TestMemoryStoreByRoomAndDateSorted(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.AddBatch([]model.Screening{
		seedScreening("m1", "S1", "2024-01-15", "20:00", "22:05"),
		seedScreening("m2", "S1", "2024-01-15", "10:00", "12:23"),
		seedScreening("m1", "S1", "2024-01-16", "11:00", "13:05"), // ngày khác
		seedScreening("m1", "S2", "2024-01-15", "12:00", "14:05"), // phòng khác
		seedScreening("m1", "S1", "2024-01-15", "14:00", "16:05"),
	})
	require.NoError(t, err)

	got, err := s.ByRoomAndDate("S1", "2024-01-15")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10:00", got[0].StartTime)
	assert.Equal(t, "14:00", got[1].StartTime)
	assert.Equal(t, "20:00", got[2].StartTime)
}

func TestMemoryStoreByMovie(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.AddBatch([]model.Screening{
		seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05"),
		seedScreening("m2", "S1", "2024-01-15", "13:00", "15:23"),
		seedScreening("m1", "S2", "2024-01-16", "10:00", "12:00"),
	})
	require.NoError(t, err)

	got, err := s.ByMovie("m1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	sc := seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05")
	require.NoError(t, s.Add(&sc))

	changed := sc
	changed.StartTime = "11:00"
	changed.EndTime = "13:05"
	require.NoError(t, s.Update(sc.ID, &changed))

	all, _ := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "11:00", all[0].StartTime)
	assert.Equal(t, sc.ID, all[0].ID)

	assert.ErrorIs(t, s.Update("scr_missing", &changed), ErrScreeningNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	sc := seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05")
	require.NoError(t, s.Add(&sc))

	require.NoError(t, s.Delete(sc.ID))
	all, _ := s.All()
	assert.Empty(t, all)

	assert.ErrorIs(t, s.Delete(sc.ID), ErrScreeningNotFound)
}

func TestMemoryStoreDeleteBatch(t *testing.T) {
	s := NewMemoryStore()
	saved, err := s.AddBatch([]model.Screening{
		seedScreening("m1", "S1", "2024-01-15", "10:00", "12:05"),
		seedScreening("m2", "S1", "2024-01-15", "13:00", "15:23"),
		seedScreening("m1", "S2", "2024-01-15", "16:00", "18:05"),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBatch([]string{saved[0].ID, saved[2].ID, "scr_missing"}))
	all, _ := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, saved[1].ID, all[0].ID)
}
