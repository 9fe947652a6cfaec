package helper

import (
	"testing"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupMinutes(t *testing.T) {
	assert.Equal(t, 20, CleanupMinutes(model.RoomLarge))
	assert.Equal(t, 15, CleanupMinutes(model.RoomMedium))
	assert.Equal(t, 15, CleanupMinutes(model.RoomSmall))
}

func TestCalculateEndTime(t *testing.T) {
	assert.Equal(t, "22:05", CalculateEndTime("20:00", 105, model.RoomLarge))
	assert.Equal(t, "22:00", CalculateEndTime("20:00", 105, model.RoomMedium))
	assert.Equal(t, "12:42", CalculateEndTime("10:00", 142, model.RoomLarge))
}

func premiereDay(n int) []model.Screening {
	out := make([]model.Screening, 0, n)
	starts := []string{"10:00", "16:00", "20:00", "12:00"}
	for i := 0; i < n; i++ {
		out = append(out, model.Screening{
			ID: starts[i], MovieId: "m3", RoomId: "S1", Date: monday,
			StartTime: starts[i], EndTime: CalculateEndTime(starts[i], 142, model.RoomLarge),
		})
	}
	return out
}

func TestCanDeleteScreeningPremiereMinimum(t *testing.T) {
	// còn đúng 2 suất: không được xoá
	all := premiereDay(2)
	err := CanDeleteScreening(all[0], &premiereMovie, all)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")

	// 3 suất trở lên: xoá được
	all = premiereDay(3)
	assert.NoError(t, CanDeleteScreening(all[0], &premiereMovie, all))

	// chỉ 1 suất (chưa từng đủ 2): vẫn bị chặn theo cùng quy tắc
	all = premiereDay(1)
	assert.Error(t, CanDeleteScreening(all[0], &premiereMovie, all))
}

func TestCanDeleteScreeningNonPremiere(t *testing.T) {
	s := model.Screening{ID: "s1", MovieId: "m1", RoomId: "S1", Date: monday, StartTime: "10:00", EndTime: "12:00"}
	assert.NoError(t, CanDeleteScreening(s, &regularMovie, []model.Screening{s}))
	assert.NoError(t, CanDeleteScreening(s, nil, []model.Screening{s}))
}

func TestCanDeleteScreeningCountsOnlySameDate(t *testing.T) {
	all := premiereDay(3)
	all[2].Date = tuesday // ngày khác, không đỡ được cho thứ Hai
	err := CanDeleteScreening(all[0], &premiereMovie, all)
	assert.Error(t, err)
}

func TestPremiereAdvisory(t *testing.T) {
	input := model.CreateScreeningInput{MovieId: "m3", RoomId: "S1", Date: monday, StartTime: "11:00"}

	advisory := PremiereAdvisory(input, premiereMovie, nil)
	assert.Contains(t, advisory, "at least 2 screenings")

	// đã có suất cùng phim cùng ngày: không cảnh báo nữa
	advisory = PremiereAdvisory(input, premiereMovie, premiereDay(1))
	assert.Empty(t, advisory)

	// phim thường không bao giờ có cảnh báo
	advisory = PremiereAdvisory(input, regularMovie, nil)
	assert.Empty(t, advisory)
}
