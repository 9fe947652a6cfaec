package helper

import (
	"sort"
	"testing"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatorMovies = []model.Movie{regularMovie, specialMovie, premiereMovie, longMovie}

var generatorRooms = []model.Room{largeRoom, mediumRoom, smallRoom}

var testWeek = []string{
	"2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18",
	"2024-01-19", "2024-01-20", "2024-01-21",
}

func movieById(t *testing.T, id string) model.Movie {
	t.Helper()
	for _, m := range generatorMovies {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("unknown movie id %s", id)
	return model.Movie{}
}

func roomById(t *testing.T, id string) model.Room {
	t.Helper()
	for _, r := range generatorRooms {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("unknown room id %s", id)
	return model.Room{}
}

// assertScheduleValid kiểm tra mọi bất biến cứng trên một lịch sinh ra
func assertScheduleValid(t *testing.T, screenings []model.Screening) {
	t.Helper()
	byRoomDate := map[string][]model.Screening{}
	for _, s := range screenings {
		movie := movieById(t, s.MovieId)
		room := roomById(t, s.RoomId)

		start := TimeToMinutes(s.StartTime)
		end := TimeToMinutes(s.EndTime)
		assert.GreaterOrEqual(t, start, DayStartMinutes, "suất %s bắt đầu trước giờ mở cửa", s.StartTime)
		assert.LessOrEqual(t, end, DayEndMinutes, "suất %s/%s tràn qua giờ đóng cửa", s.Date, s.StartTime)
		assert.Equal(t, CalculateEndTime(s.StartTime, movie.RuntimeMin, room.Size), s.EndTime)

		if movie.Type == model.MovieSpecial {
			assert.True(t, IsWeekendDate(s.Date), "phim SPECIAL bị xếp vào %s", s.Date)
		}
		if movie.RuntimeMin > 150 {
			assert.NotEqual(t, model.RoomSmall, room.Size, "phim dài bị xếp vào phòng SMALL")
		}

		key := s.RoomId + "|" + s.Date
		byRoomDate[key] = append(byRoomDate[key], s)
	}

	// không chồng giờ trong cùng phòng cùng ngày (khoảng nửa mở)
	for key, group := range byRoomDate {
		sort.Slice(group, func(i, j int) bool { return group[i].StartTime < group[j].StartTime })
		for i := 0; i < len(group)-1; i++ {
			assert.LessOrEqual(t, TimeToMinutes(group[i].EndTime), TimeToMinutes(group[i+1].StartTime),
				"chồng giờ trong %s: %s-%s và %s", key, group[i].StartTime, group[i].EndTime, group[i+1].StartTime)
		}
	}
}

func TestFillWeekInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		generated := NewWeekGenerator(generatorMovies, generatorRooms, seed).FillWeek(testWeek, nil)
		require.NotEmpty(t, generated)
		assertScheduleValid(t, generated)

		for _, s := range generated {
			assert.Empty(t, s.ID, "generator không được tự gán id")
			assert.Equal(t, "scheduled", s.Status)
			assert.Contains(t, testWeek, s.Date)
		}
	}
}

func TestFillWeekPremiereRules(t *testing.T) {
	generated := NewWeekGenerator(generatorMovies, generatorRooms, 42).FillWeek(testWeek, nil)

	for _, date := range testWeek {
		count := 0
		earliest := DayEndMinutes + 1
		for _, s := range generated {
			if s.MovieId == premiereMovie.ID && s.Date == date {
				count++
				if start := TimeToMinutes(s.StartTime); start < earliest {
					earliest = start
				}
			}
		}
		if count == 0 {
			continue
		}
		assert.GreaterOrEqual(t, count, 2, "PREMIERE chỉ có %d suất ngày %s", count, date)
		assert.Less(t, earliest, 14*60, "suất PREMIERE sớm nhất ngày %s là %s", date, MinutesToTime(earliest))
	}
}

func TestFillWeekDeterministic(t *testing.T) {
	first := NewWeekGenerator(generatorMovies, generatorRooms, 99).FillWeek(testWeek, nil)
	second := NewWeekGenerator(generatorMovies, generatorRooms, 99).FillWeek(testWeek, nil)
	assert.Equal(t, first, second)
}

func TestFillWeekRespectsExisting(t *testing.T) {
	blocker := model.Screening{
		ID: "s-existing", MovieId: regularMovie.ID, RoomId: largeRoom.ID,
		Date: monday, StartTime: "12:00", EndTime: "14:05", Status: "scheduled",
	}
	generated := NewWeekGenerator(generatorMovies, generatorRooms, 7).FillWeek(testWeek, []model.Screening{blocker})
	assertScheduleValid(t, generated)

	blockStart := TimeToMinutes(blocker.StartTime)
	blockEnd := TimeToMinutes(blocker.EndTime)
	for _, s := range generated {
		assert.NotEqual(t, blocker.ID, s.ID)
		if s.RoomId != blocker.RoomId || s.Date != blocker.Date {
			continue
		}
		start := TimeToMinutes(s.StartTime)
		end := TimeToMinutes(s.EndTime)
		assert.True(t, end <= blockStart || start >= blockEnd,
			"suất sinh ra %s-%s chồng lên suất có sẵn", s.StartTime, s.EndTime)
	}
}
