package helper

import (
	"math/rand"
	"sort"

	"cinema_scheduler/constants"
	"cinema_scheduler/model"
)

const (
	maxWeekAttempts = 1000 // ngân sách thử chung cho cả tuần
	maxSlotAttempts = 100  // số lần thử tìm giờ cho một suất
)

// WeekGenerator sinh ngẫu nhiên suất chiếu lấp đầy một tuần. Thuật toán
// best-effort: mọi suất sinh ra đều qua ValidateScreening nên không bao giờ
// vi phạm quy tắc cứng, nhưng khi ràng buộc quá chặt có thể sinh ít hơn
// mục tiêu 2-4 suất mỗi phòng. Random source được seed để tái lập khi test.
type WeekGenerator struct {
	movies []model.Movie
	rooms  []model.Room
	rnd    *rand.Rand
}

func NewWeekGenerator(movies []model.Movie, rooms []model.Room, seed int64) *WeekGenerator {
	return &WeekGenerator{
		movies: movies,
		rooms:  rooms,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// randomTime sinh giờ trong khung 10:00 - 23:59, bội số 15 phút trừ giờ 23
// được phép lấy phút bất kỳ
func (g *WeekGenerator) randomTime() string {
	hour := g.rnd.Intn(14) + 10
	var minute int
	if hour == 23 {
		minute = g.rnd.Intn(60)
	} else {
		minute = g.rnd.Intn(4) * 15
	}
	return MinutesToTime(hour*60 + minute)
}

// randomMorningTime sinh giờ trong [10:00, 14:00) cho suất PREMIERE đầu ngày
func (g *WeekGenerator) randomMorningTime() string {
	hour := g.rnd.Intn(4) + 10
	minute := g.rnd.Intn(4) * 15
	return MinutesToTime(hour*60 + minute)
}

// eligibleMovies loại phim SPECIAL khỏi các ngày trong tuần
func (g *WeekGenerator) eligibleMovies(date string) []model.Movie {
	eligible := []model.Movie{}
	for _, m := range g.movies {
		if m.Type == model.MovieSpecial && !IsWeekendDate(date) {
			continue
		}
		eligible = append(eligible, m)
	}
	return eligible
}

// fitsSlot kiểm tra suất mới chen được vào đâu đó: trước suất đầu, giữa hai
// suất liền nhau, hoặc sau suất cuối. sorted phải sắp theo giờ bắt đầu.
func fitsSlot(startMin, duration int, sorted []model.Screening) bool {
	firstStart := TimeToMinutes(sorted[0].StartTime)
	if startMin+duration <= firstStart && startMin >= DayStartMinutes {
		return true
	}
	for j := 0; j < len(sorted)-1; j++ {
		currentEnd := TimeToMinutes(sorted[j].EndTime)
		nextStart := TimeToMinutes(sorted[j+1].StartTime)
		if startMin >= currentEnd && startMin+duration <= nextStart {
			return true
		}
	}
	lastEnd := TimeToMinutes(sorted[len(sorted)-1].EndTime)
	return startMin >= lastEnd && startMin+duration <= DayEndMinutes
}

func countMovieOnDate(screenings []model.Screening, movieId, date string) int {
	count := 0
	for _, s := range screenings {
		if s.MovieId == movieId && s.Date == date {
			count++
		}
	}
	return count
}

// FillWeek sinh suất mới cho mỗi ngày trong weekDates, tôn trọng các suất đã
// có trong existing. Không ghi vào store; caller commit cả lô một lần.
func (g *WeekGenerator) FillWeek(weekDates []string, existing []model.Screening) []model.Screening {
	newScreenings := []model.Screening{}
	totalAttempts := 0

	combined := func() []model.Screening {
		all := make([]model.Screening, 0, len(existing)+len(newScreenings))
		all = append(all, existing...)
		all = append(all, newScreenings...)
		return all
	}

	for _, date := range weekDates {
		validMovies := g.eligibleMovies(date)
		if len(validMovies) == 0 {
			continue
		}

		for _, room := range g.rooms {
			roomScreenings := []model.Screening{}
			for _, s := range combined() {
				if s.RoomId == room.ID && s.Date == date {
					roomScreenings = append(roomScreenings, s)
				}
			}
			sort.Slice(roomScreenings, func(i, j int) bool {
				return roomScreenings[i].StartTime < roomScreenings[j].StartTime
			})

			// mục tiêu 2-4 suất mỗi phòng mỗi ngày
			numShows := g.rnd.Intn(3) + 2

			for i := 0; i < numShows && totalAttempts < maxWeekAttempts; i++ {
				totalAttempts++

				candidates := []model.Movie{}
				for _, m := range validMovies {
					if m.RuntimeMin > 150 && room.Size == model.RoomSmall {
						continue
					}
					candidates = append(candidates, m)
				}
				if len(candidates) == 0 {
					continue
				}
				movie := candidates[g.rnd.Intn(len(candidates))]
				duration := movie.RuntimeMin + CleanupMinutes(room.Size)

				for attempts := 0; attempts < maxSlotAttempts; attempts++ {
					startTime := g.randomTime()
					if len(roomScreenings) > 0 && !fitsSlot(TimeToMinutes(startTime), duration, roomScreenings) {
						continue
					}

					input := model.CreateScreeningInput{
						MovieId:   movie.ID,
						RoomId:    room.ID,
						Date:      date,
						StartTime: startTime,
					}
					all := combined()
					if len(ValidateScreening(input, movie, room, all)) > 0 {
						continue
					}

					// suất PREMIERE đầu tiên trong ngày bị ép về buổi sáng
					if movie.Type == model.MoviePremiere &&
						countMovieOnDate(all, movie.ID, date) == 0 &&
						TimeToMinutes(startTime) >= 14*60 {
						startTime = g.randomMorningTime()
						input.StartTime = startTime
						if len(ValidateScreening(input, movie, room, all)) > 0 {
							continue
						}
					}

					created := model.Screening{
						MovieId:   movie.ID,
						RoomId:    room.ID,
						Date:      date,
						StartTime: startTime,
						EndTime:   CalculateEndTime(startTime, movie.RuntimeMin, room.Size),
						Status:    constants.SCREENING_SCHEDULED,
					}
					newScreenings = append(newScreenings, created)
					roomScreenings = append(roomScreenings, created)
					sort.Slice(roomScreenings, func(i, j int) bool {
						return roomScreenings[i].StartTime < roomScreenings[j].StartTime
					})
					break
				}
			}
		}

		// quét cuối ngày: mỗi phim PREMIERE hợp lệ hôm đó phải đủ 2 suất
		for _, movie := range validMovies {
			if movie.Type != model.MoviePremiere {
				continue
			}
			validRooms := []model.Room{}
			for _, r := range g.rooms {
				if movie.RuntimeMin > 150 && r.Size == model.RoomSmall {
					continue
				}
				validRooms = append(validRooms, r)
			}
			if len(validRooms) == 0 {
				continue
			}

			for countMovieOnDate(combined(), movie.ID, date) < 2 && totalAttempts < maxWeekAttempts {
				totalAttempts++
				room := validRooms[g.rnd.Intn(len(validRooms))]

				var startTime string
				if countMovieOnDate(combined(), movie.ID, date) == 0 {
					startTime = g.randomMorningTime()
				} else {
					startTime = g.randomTime()
				}

				input := model.CreateScreeningInput{
					MovieId:   movie.ID,
					RoomId:    room.ID,
					Date:      date,
					StartTime: startTime,
				}
				if len(ValidateScreening(input, movie, room, combined())) > 0 {
					continue
				}
				newScreenings = append(newScreenings, model.Screening{
					MovieId:   movie.ID,
					RoomId:    room.ID,
					Date:      date,
					StartTime: startTime,
					EndTime:   CalculateEndTime(startTime, movie.RuntimeMin, room.Size),
					Status:    constants.SCREENING_SCHEDULED,
				})
			}
		}
	}

	return newScreenings
}
