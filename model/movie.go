package model

// MovieType phân loại phim theo quy tắc lập lịch
// - REGULAR: không có ràng buộc riêng
// - SPECIAL: chỉ chiếu thứ Sáu, thứ Bảy, Chủ nhật
// - PREMIERE: demandScore >= 70, suất đầu trước 14:00, tối thiểu 2 suất trong ngày
type MovieType string

const (
	MovieRegular  MovieType = "REGULAR"
	MovieSpecial  MovieType = "SPECIAL"
	MoviePremiere MovieType = "PREMIERE"
)

// Rating độ tuổi: A (mọi lứa tuổi), B (12+), B15 (15+), C (18+)
type Rating string

const (
	RatingA   Rating = "A"
	RatingB   Rating = "B"
	RatingB15 Rating = "B15"
	RatingC   Rating = "C"
)

type Movie struct {
	ID          string    `gorm:"primaryKey;size:16" json:"id"`
	Title       string    `gorm:"not null;index" validate:"required" json:"title"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	RuntimeMin  int       `gorm:"not null" validate:"required,gt=0" json:"runtimeMin"`
	Rating      Rating    `gorm:"size:4;not null" validate:"required,oneof=A B B15 C" json:"rating"`
	Type        MovieType `gorm:"size:10;not null" validate:"required,oneof=REGULAR SPECIAL PREMIERE" json:"type"`
	DemandScore int       `gorm:"not null" validate:"min=0,max=100" json:"demandScore"`
	TrailerUrl  *string   `gorm:"size:255" json:"trailerUrl,omitempty"`
}
