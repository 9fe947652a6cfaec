package database

import (
	"log"

	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeedData nạp catalog phim và phòng. Catalog là dữ liệu chỉ đọc trong suốt
// vòng đời tiến trình; suất chiếu không seed.
func SeedData(db *gorm.DB) {
	movies := []model.Movie{
		{ID: "m1", Title: "Midnight", RuntimeMin: 105, Rating: model.RatingB15, Type: model.MovieRegular, DemandScore: 62,
			TrailerUrl: utils.StringPtr("https://www.youtube.com/embed/7wWEvqjsvxE")},
		{ID: "m2", Title: "Zombies vs Robots", RuntimeMin: 128, Rating: model.RatingA, Type: model.MovieSpecial, DemandScore: 75,
			TrailerUrl: utils.StringPtr("https://www.youtube.com/embed/8Qn_spdM5Zg")},
		{ID: "m3", Title: "Avenue 28", RuntimeMin: 142, Rating: model.RatingB, Type: model.MoviePremiere, DemandScore: 81,
			TrailerUrl: utils.StringPtr("https://www.youtube.com/embed/0WWzgGyAH6Y")},
		{ID: "m4", Title: "Shadows of the North", RuntimeMin: 156, Rating: model.RatingC, Type: model.MovieRegular, DemandScore: 55,
			TrailerUrl: utils.StringPtr("https://www.youtube.com/embed/zHhR3daI3bY")},
		{ID: "m5", Title: "The Return", RuntimeMin: 98, Rating: model.RatingA, Type: model.MovieRegular, DemandScore: 34,
			TrailerUrl: utils.StringPtr("https://www.youtube.com/embed/AzBSsKqvXdI")},
	}
	for _, movie := range movies {
		movie.Slug = slug.Make(movie.Title)
		if err := db.Where(model.Movie{ID: movie.ID}).FirstOrCreate(&movie).Error; err != nil {
			log.Println("failed to seed movie:", movie.Title, "error:", err)
		}
	}

	rooms := []model.Room{
		{ID: "S1", Name: "Room 1", Size: model.RoomLarge, Seats: 200},
		{ID: "S2", Name: "Room 2", Size: model.RoomMedium, Seats: 120},
		{ID: "S3", Name: "Room 3", Size: model.RoomSmall, Seats: 80},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{ID: room.ID}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Name, "error:", err)
		}
	}
}
