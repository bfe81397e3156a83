package entities

import "time"

// Movie is a single distributable video entry identified by a short numeric
// code. The code is immutable once assigned; counters only grow.
type Movie struct {
	ID               uint      `gorm:"primaryKey"`
	Code             string    `gorm:"size:8;not null;uniqueIndex"`
	Title            string    `gorm:"size:500;not null"`
	Description      string    `gorm:"type:text"`
	FileID           string    `gorm:"size:500;not null"`
	ChannelMessageID int       `gorm:""`
	Views            int       `gorm:"not null;default:0"`
	Likes            int       `gorm:"not null;default:0"`
	Dislikes         int       `gorm:"not null;default:0"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	CreatedBy        int64     `gorm:""`
}

func (Movie) TableName() string {
	return "movies"
}

// Page is one page of active movies plus the total for pagination
type Page struct {
	Movies     []Movie
	Total      int64
	Page       int
	TotalPages int
}
