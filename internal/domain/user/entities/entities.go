package entities

import "time"

// User represents a Telegram user of the bot. Created on first interaction,
// touched on every one after that.
type User struct {
	ID            uint      `gorm:"primaryKey"`
	TgID          int64     `gorm:"column:tg_id;not null;uniqueIndex"`
	FirstName     string    `gorm:"size:255"`
	Username      string    `gorm:"size:255"`
	IsAdmin       bool      `gorm:"not null;default:false"`
	IsBlocked     bool      `gorm:"not null;default:false"`
	WatchedMovies int       `gorm:"not null;default:0"`
	TotalRatings  int       `gorm:"not null;default:0"`
	JoinedAt      time.Time `gorm:"autoCreateTime"`
	LastActive    time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// Identity is what the platform tells us about a user on each update
type Identity struct {
	TgID      int64
	FirstName string
	Username  string
}
