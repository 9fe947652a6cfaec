package model

type RoomSize string

const (
	RoomSmall  RoomSize = "SMALL"
	RoomMedium RoomSize = "MEDIUM"
	RoomLarge  RoomSize = "LARGE"
)

type Room struct {
	ID    string   `gorm:"primaryKey;size:16" json:"id"`
	Name  string   `gorm:"not null" validate:"required" json:"name"`
	Size  RoomSize `gorm:"size:10;not null" validate:"required,oneof=SMALL MEDIUM LARGE" json:"size"`
	Seats int      `gorm:"not null" validate:"required,gt=0" json:"seats"`
}
