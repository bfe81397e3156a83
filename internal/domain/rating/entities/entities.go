package entities

import (
	"time"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

// Kind is the form a rating takes
type Kind string

const (
	KindLike    Kind = "like"
	KindDislike Kind = "dislike"
	KindStars   Kind = "stars"
)

// Rating is a user's one-time feedback on a movie. At most one rating
// exists per (user, movie) pair, enforced by a unique index.
type Rating struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_user_movie,unique"`
	MovieID   uint      `gorm:"not null;index:idx_user_movie,unique"`
	Kind      Kind      `gorm:"column:rating_type;size:10;not null"`
	Stars     int       `gorm:""`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// declared so AutoMigrate creates the same cascading foreign keys
	// the SQL migrations do; never preloaded
	User  *userentities.User     `gorm:"constraint:OnDelete:CASCADE"`
	Movie *catalogentities.Movie `gorm:"constraint:OnDelete:CASCADE"`
}

func (Rating) TableName() string {
	return "ratings"
}
